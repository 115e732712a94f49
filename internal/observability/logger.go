package observability

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair carried on the context and attached to every log line.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField is a key-value pair of a metrics line.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// RequestIDHeader is read from and echoed on every request.
const RequestIDHeader = "X-Request-ID"

// WithFields returns a copy of ctx carrying fields after any it already has.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existingFields := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existingFields)+len(fields))
	merged = append(merged, existingFields...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

// Annotate adds fields to the request context so that later handlers and the
// access log line include them.
func Annotate(c *gin.Context, fields ...Field) {
	c.Request = c.Request.WithContext(WithFields(c.Request.Context(), fields...))
}

// FieldValue returns the string value of the last field named key on ctx, or
// "" when absent.
func FieldValue(ctx context.Context, key string) string {
	fields := getObservabilityFields(ctx)
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Key == key {
			if v, ok := fields[i].Value.(string); ok {
				return v
			}
			return fmt.Sprint(fields[i].Value)
		}
	}
	return ""
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// mergeFields lets metric fields override context fields of the same key.
func mergeFields(ctx context.Context, fields []MetricField) []zapcore.Field {
	fieldMap := make(map[string]zapcore.Field)

	for _, field := range getObservabilityFields(ctx) {
		fieldMap[field.Key] = zap.Any(field.Key, field.Value)
	}

	for _, field := range fields {
		fieldMap[field.Key] = zap.Any(field.Key, field.Value)
	}

	mergedFields := make([]zapcore.Field, 0, len(fieldMap))
	for _, field := range fieldMap {
		mergedFields = append(mergedFields, field)
	}

	return mergedFields
}

// Middleware tags the request context with a request id and request metadata,
// recovers panics into a 500 and writes one access line per request. The
// client ip comes from gin, so it honours the engine's TrustedPlatform.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set(RequestIDHeader, requestID)
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)

		fields := []Field{
			{"request_id", requestID},
			{"path", c.Request.URL.Path},
			{"method", c.Request.Method},
			{"client_ip", c.ClientIP()},
			{"user_agent", c.Request.UserAgent()},
		}
		if c.Request.ContentLength > 0 {
			fields = append(fields, Field{"content_length", c.Request.ContentLength})
		}
		if len(c.Request.URL.RawQuery) > 0 {
			fields = append(fields, Field{"query_params", c.Request.URL.RawQuery})
		}
		Annotate(c, fields...)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}

			if c.Request.URL.Path == "/health" {
				return
			}

			// Handlers may have annotated the context (caller id etc.)
			ctx := c.Request.Context()
			latency := time.Since(start)
			status := c.Writer.Status()
			ctx = WithFields(ctx,
				Field{"route", c.FullPath()},
				Field{"status", status},
				Field{"latency_ns", latency.Nanoseconds()},
			)
			switch {
			case status >= http.StatusInternalServerError:
				l.Warn(ctx, "Request failed")
			default:
				l.Info(ctx, "Request processed")
			}

			l.Metrics(ctx,
				MetricField{"method", c.Request.Method},
				MetricField{"path", c.FullPath()},
				MetricField{"status", status},
				MetricField{"latency", latency},
				MetricField{"request_id", requestID},
			)
		}()
		c.Next()
	}
}

// Logger wraps a zap logger and pulls fields from the context on every call.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger builds a production JSON logger. LOG_LEVEL (debug, info, warn,
// error) overrides the default info level; an unparsable value is ignored.
func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zap.ParseAtomicLevel(lvl); err == nil {
			cfg.Level = parsed
		}
	}
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		zapLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// newLoggerWithCore is used by tests to observe output.
func newLoggerWithCore(core zapcore.Core) *Logger {
	return &Logger{zapLogger: zap.New(core)}
}

func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	zapFields := make([]zapcore.Field, len(fields))

	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Info(msg, zap.Error(err))
}

// Error logs at error level; err may be nil.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Warn(msg, zap.Error(err))
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Metrics writes a "Metrics" line with the context fields merged in.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

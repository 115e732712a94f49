package authz

import (
	"errors"
	"strings"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokens   TokenValidator
	profiles ProfileLoader
	logger   *observability.Logger
}

func NewMiddleware(tokens TokenValidator, profiles ProfileLoader, logger *observability.Logger) *Middleware {
	return &Middleware{tokens: tokens, profiles: profiles, logger: logger}
}

// Authenticate verifies the bearer token and loads the caller's roles. A
// user without a profile passes with no roles so it can sign up.
func (m *Middleware) Authenticate(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Abort(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := m.tokens.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			apierrors.Abort(c, apierrors.Unauthorized("Authorization token has expired"))
			return
		}
		apierrors.Abort(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		apierrors.Abort(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	observability.Annotate(c, observability.Field{Key: "user_id", Value: userID.String()})
	ctx = c.Request.Context()

	caller := Caller{UserID: userID, Email: claims.Email}
	profile, err := m.profiles.GetProfileByID(ctx, userID)
	switch {
	case err == nil:
		caller.Roles = profile.Roles
	case errors.Is(err, store.ErrNotFound):
	default:
		m.logger.Error(ctx, "failed to load caller profile", err)
		apierrors.Abort(c, err)
		return
	}

	SetCaller(c, caller)
	c.Next()
}

// RequireRole rejects callers holding none of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			apierrors.Abort(c, apierrors.Unauthorized("Authentication required"))
			return
		}
		if !caller.HasAnyRole(roles...) {
			apierrors.Abort(c, apierrors.Forbidden("You do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}

package processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	CodeLength = 8
	// codeAlphabet omits 0, O, 1 and I so codes survive being read aloud.
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxCodeAttempts = 5
)

var ErrCodeSpaceExhausted = errors.New("could not generate a unique referral code")

// GenerateCode returns a referral code that checker reports as unused
func GenerateCode(ctx context.Context, checker CodeChecker) (string, error) {
	return generateCode(ctx, checker, rand.Reader)
}

func generateCode(ctx context.Context, checker CodeChecker, random io.Reader) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newCode(random)
		if err != nil {
			return "", err
		}
		exists, err := checker.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func newCode(random io.Reader) (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	// 256 is a multiple of len(codeAlphabet), so the modulo is unbiased.
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// ValidCode reports whether s has the shape of a generated code
func ValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(codeAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}


package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier valida el bearer token recibido por el servidor de desarrollo.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) error
}

// StaticVerifier acepta un único token.
type StaticVerifier struct {
	token string
}

func NewStaticVerifier(token string) *StaticVerifier {
	return &StaticVerifier{token: strings.TrimSpace(token)}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) error {
	if v == nil || v.token == "" {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(v.token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

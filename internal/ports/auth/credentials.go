package auth

import (
	"context"
	"errors"
	"strings"
)

var ErrNoCredential = errors.New("no credential configured")

// CredentialProvider entrega el bearer token que el transporte adjunta a cada request.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken es un token fijo inyectado por configuración.
type StaticToken string

func (t StaticToken) Token(_ context.Context) (string, error) {
	v := strings.TrimSpace(string(t))
	if v == "" {
		return "", ErrNoCredential
	}
	return v, nil
}

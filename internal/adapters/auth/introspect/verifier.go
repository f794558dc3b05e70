package introspect

import (
	"context"
	"fmt"
	"strings"

	"wolfpack/internal/ports/auth"
)

// Verifier implementa auth.TokenVerifier. Si Scope no es vacío, el token debe traerlo.
type Verifier struct {
	client *Client
	scope  string
}

func NewVerifier(client *Client, requiredScope string) *Verifier {
	return &Verifier{client: client, scope: strings.TrimSpace(requiredScope)}
}

var _ auth.TokenVerifier = (*Verifier)(nil)

func (v *Verifier) Verify(ctx context.Context, token string) error {
	if v == nil || !v.client.Configured() {
		return ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.ErrInvalidToken
	}

	res, err := v.client.Introspect(ctx, token)
	if err != nil {
		return fmt.Errorf("introspect: %w", err)
	}
	if !res.Active {
		return auth.ErrInvalidToken
	}
	if v.scope != "" && !hasScope(res.Scope, v.scope) {
		return fmt.Errorf("%w: missing scope %q", auth.ErrInvalidToken, v.scope)
	}
	return nil
}

func hasScope(granted, want string) bool {
	for _, s := range strings.Fields(granted) {
		if s == want {
			return true
		}
	}
	return false
}

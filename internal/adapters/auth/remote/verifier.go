package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-shelter-hub/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implementa auth.AuthVerifier contra /auth/me del backend.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.Me(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("auth verify failed: %w", err)
	}

	if claims.UserID == "" {
		return auth.Claims{}, errors.New("auth claims missing user id")
	}
	claims.Token = token
	return claims, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)

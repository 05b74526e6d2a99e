package auth

import "context"

// AuthVerifier valida el bearer token contra el proveedor de identidad.
// Los claims devueltos traen el rol; el middleware les agrega el token.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

package forms

import "context"

// Repository reenvía el formulario al backend; devuelve el ID asignado.
type Repository interface {
	Submit(ctx context.Context, s Submission) (string, error)
}

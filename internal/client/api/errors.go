package api

import "fmt"

// Error is the normalized failure shape for every remote call. Message is
// suitable for direct display; Status is the HTTP status code, or 0 when the
// request never produced a response (transport failure).
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// User-facing messages, matching the backend's locale.
const (
	msgGenericError   = "Ha ocurrido un error"
	msgSessionExpired = "Sesión expirada. Por favor, vuelve a iniciar sesión."
)

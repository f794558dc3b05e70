package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError representa una respuesta no-2xx o un fallo de red.
// Body es el mensaje del servidor tal cual (recortado); StatusCode es 0 si no hubo respuesta.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("transport error: %s %s: status=%d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	case e.Body == "":
		return fmt.Sprintf("transport error: %s %s: status=%d", e.Method, e.Path, e.StatusCode)
	default:
		return fmt.Sprintf("transport error: %s %s: status=%d body=%s", e.Method, e.Path, e.StatusCode, e.Body)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message es el texto para el usuario: el del servidor si lo hay.
func (e *TransportError) Message() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if t := http.StatusText(e.StatusCode); t != "" {
		return t
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// StatusOf devuelve el status HTTP de un *TransportError (0 si no aplica).
func StatusOf(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// UserMessage extrae el mensaje mostrable de cualquier error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Message()
	}
	return err.Error()
}

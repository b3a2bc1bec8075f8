package mindbodyclient

import "fmt"

// HTTPError representa uma resposta do upstream com status >= 400
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implementa a interface error
func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream request failed with status %s", e.Status)
}

// TransportError cobre falhas de rede, timeout e corpo mal formado
type TransportError struct {
	Cause error
}

// Error implementa a interface error
func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream transport error: %v", e.Cause)
}

// Unwrap retorna o erro subjacente
func (e *TransportError) Unwrap() error {
	return e.Cause
}

package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
)

// Erros de validação da consulta de vendas. Todos são detectados antes de qualquer chamada ao upstream.
var (
	ErrMissingParameter   = errors.New("missing parameter")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRange       = errors.New("invalid range")
	ErrInvalidProperty    = errors.New("invalid property")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrMissingCredentials = errors.New("missing credentials")
)

var errorCodes = map[error]string{
	ErrMissingParameter:   apiErrors.ErrMissingRequiredData,
	ErrInvalidDate:        apiErrors.ErrInvalidFormat,
	ErrInvalidRange:       apiErrors.ErrInvalidRange,
	ErrInvalidProperty:    apiErrors.ErrInvalidProperty,
	ErrInvalidParameter:   apiErrors.ErrInvalidRequest,
	ErrMissingCredentials: apiErrors.ErrMissingCredentials,
}

// ValidationError é um erro de validação com o parâmetro envolvido
type ValidationError struct {
	Err     error  // Erro base
	Param   string // Parâmetro de query ou cabeçalho
	Details string // Detalhes para o cliente
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code retorna o código de API correspondente ao erro base
func (e *ValidationError) Code() string {
	if code, ok := errorCodes[e.Err]; ok {
		return code
	}
	return apiErrors.ErrInvalidRequest
}

// NewValidationError cria um novo ValidationError
func NewValidationError(err error, param string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Param:   param,
		Details: details,
	}
}

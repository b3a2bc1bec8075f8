package validation

import (
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
)

// Nome do cabeçalho ou parâmetro de query de cada campo validado
var paramNames = map[string]string{
	"APIKey": "api-key",
	"SiteID": "siteid",
	"Limit":  "limit",
	"Offset": "offset",
}

var missingCredentialMessages = map[string]string{
	"APIKey": "api-key header is required",
	"SiteID": "siteid header is required",
}

// New retorna um validador configurado
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// Credentials valida os cabeçalhos de credenciais antes de qualquer chamada ao upstream
func Credentials(v *validatorv10.Validate, creds domain.Credentials) error {
	fe := firstFieldError(v.Struct(creds))
	if fe == nil {
		return nil
	}

	return &domain.ValidationError{
		Err:     domain.ErrMissingCredentials,
		Param:   paramNames[fe.Field()],
		Details: missingCredentialMessages[fe.Field()],
	}
}

// Pagination valida limit e offset repassados ao upstream
func Pagination(v *validatorv10.Validate, page domain.Pagination) error {
	fe := firstFieldError(v.Struct(page))
	if fe == nil {
		return nil
	}

	param := paramNames[fe.Field()]
	return domain.NewValidationError(
		domain.ErrInvalidParameter,
		param,
		fmt.Sprintf("%s=%v (%s=%s)", param, fe.Value(), fe.Tag(), fe.Param()),
	)
}

func firstFieldError(err error) validatorv10.FieldError {
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0]
	}

	return nil
}

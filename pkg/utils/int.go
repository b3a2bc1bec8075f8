package utils

import (
	"strings"

	"github.com/spf13/cast"
)

// IntOrDefault converte um parâmetro de query em inteiro, usando o padrão quando vazio
func IntOrDefault(value string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}

	// cast usa base 0: "010" seria lido como octal
	if trimmed := strings.TrimLeft(value, "0"); trimmed != value {
		if trimmed == "" {
			trimmed = "0"
		}
		value = trimmed
	}

	return cast.ToIntE(value)
}

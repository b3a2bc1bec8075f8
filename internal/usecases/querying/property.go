package querying

import (
	"fmt"
	"strings"

	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
)

// PathKind indica se a propriedade é um campo da venda ou de uma coleção aninhada
type PathKind int

const (
	TopLevel PathKind = iota + 1
	Nested
)

// PropertyPath é a projeção pedida em property, já resolvida para um acessor tipado
type PropertyPath struct {
	Kind       PathKind
	Collection mindbodydomain.Collection // Vazio quando Kind == TopLevel
	Field      string

	topLevel mindbodydomain.SaleAccessor
	nested   mindbodydomain.NestedAccessor
}

// ParsePropertyPath valida property contra as tabelas de campos conhecidos.
// Retorna nil sem erro quando nenhuma projeção foi pedida.
func ParsePropertyPath(raw string) (*PropertyPath, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	segments := strings.Split(raw, ".")
	if len(segments) > 2 {
		return nil, invalidProperty(raw)
	}

	collection, isCollection := matchCollection(segments[0])
	if !isCollection {
		if len(segments) != 1 {
			return nil, invalidProperty(raw)
		}

		get, ok := mindbodydomain.SaleFields[segments[0]]
		if !ok {
			return nil, invalidProperty(raw)
		}

		return &PropertyPath{Kind: TopLevel, Field: segments[0], topLevel: get}, nil
	}

	if len(segments) != 2 {
		return nil, invalidProperty(raw)
	}

	get, ok := mindbodydomain.NestedField(collection, segments[1])
	if !ok {
		return nil, invalidProperty(raw)
	}

	return &PropertyPath{Kind: Nested, Collection: collection, Field: segments[1], nested: get}, nil
}

// Extract projeta as vendas de um bucket. Retorna false se algum registro não tem o campo.
func (p *PropertyPath) Extract(sales []mindbodydomain.Sale) ([]any, bool) {
	values := make([]any, 0, len(sales))

	for i := range sales {
		switch p.Kind {
		case TopLevel:
			v, ok := p.topLevel(&sales[i])
			if !ok {
				return nil, false
			}
			values = append(values, v)
		case Nested:
			items, ok := p.nested(&sales[i])
			if !ok {
				return nil, false
			}
			values = append(values, items...)
		}
	}

	return values, true
}

func (p *PropertyPath) String() string {
	if p.Kind == Nested {
		return fmt.Sprintf("%s.%s", p.Collection, p.Field)
	}
	return p.Field
}

// A coleção é comparada por igualdade sem diferenciar maiúsculas
func matchCollection(segment string) (mindbodydomain.Collection, bool) {
	for _, c := range mindbodydomain.Collections {
		if strings.EqualFold(segment, string(c)) {
			return c, true
		}
	}
	return "", false
}

func invalidProperty(raw string) error {
	return domain.NewValidationError(domain.ErrInvalidProperty, "property", raw)
}

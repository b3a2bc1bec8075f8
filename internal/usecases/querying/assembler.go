package querying

import (
	"fmt"
	"strings"
)

// Chaves aceitas em meta
const (
	MetaTotal    = "total"
	MetaUpstream = "upstream"
	MetaFailed   = "failed"
)

// Envelope é o corpo de resposta de /api/v1/sales
type Envelope struct {
	Meta  map[string]int `json:"meta,omitempty"`
	Data  []any          `json:"data"`
	Error string         `json:"error,omitempty"`
}

type AssembleOptions struct {
	Flatten bool
	Meta    []string // Valores brutos de meta, repetidos e/ou separados por vírgula
}

// Assemble monta o envelope final. Nunca falha: uma chave de meta desconhecida
// resulta em {error, data}.
func Assemble(slots []Slot, opts AssembleOptions) Envelope {
	data := make([]any, 0, len(slots))
	for _, slot := range slots {
		data = append(data, slot.Value)
	}

	if opts.Flatten {
		data = flatten(data)
	}

	keys := ParseMetaKeys(opts.Meta)
	if len(keys) == 0 {
		return Envelope{Data: data}
	}

	meta := make(map[string]int, len(keys))
	for _, key := range keys {
		switch key {
		case MetaTotal:
			meta[key] = countLeaves(data)
		case MetaUpstream:
			meta[key] = upstreamTotal(slots)
		case MetaFailed:
			meta[key] = countFailed(slots)
		default:
			return Envelope{Data: data, Error: fmt.Sprintf("Invalid meta key: %s", key)}
		}
	}

	return Envelope{Meta: meta, Data: data}
}

// ParseMetaKeys normaliza os valores de meta, removendo vazios e repetidos
func ParseMetaKeys(values []string) []string {
	var keys []string
	seen := make(map[string]struct{})

	for _, value := range values {
		for _, key := range strings.Split(value, ",") {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}

// flatten remove um nível de aninhamento; valores que não são listas são mantidos
func flatten(data []any) []any {
	flat := make([]any, 0, len(data))
	for _, v := range data {
		if items, ok := v.([]any); ok {
			flat = append(flat, items...)
			continue
		}
		flat = append(flat, v)
	}
	return flat
}

func countLeaves(data []any) int {
	total := 0
	for _, v := range data {
		if items, ok := v.([]any); ok {
			total += len(items)
			continue
		}
		total++
	}
	return total
}

func upstreamTotal(slots []Slot) int {
	total := 0
	for _, slot := range slots {
		total += slot.UpstreamTotal
	}
	return total
}

func countFailed(slots []Slot) int {
	failed := 0
	for _, slot := range slots {
		if _, ok := slot.Value.(*BucketError); ok {
			failed++
		}
	}
	return failed
}

package querying

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
)

func TestParsePropertyPath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantErr  bool
		validate func(t *testing.T, path *PropertyPath)
	}{
		{
			name: "Vazio não pede projeção",
			raw:  "",
			validate: func(t *testing.T, path *PropertyPath) {
				assert.Nil(t, path)
			},
		},
		{
			name: "Campo da venda",
			raw:  "ClientId",
			validate: func(t *testing.T, path *PropertyPath) {
				assert.Equal(t, TopLevel, path.Kind)
				assert.Equal(t, "ClientId", path.Field)
				assert.Empty(t, path.Collection)
			},
		},
		{
			name: "Campo de PurchasedItems",
			raw:  "PurchasedItems.UnitPrice",
			validate: func(t *testing.T, path *PropertyPath) {
				assert.Equal(t, Nested, path.Kind)
				assert.Equal(t, mindbodydomain.PurchasedItems, path.Collection)
				assert.Equal(t, "UnitPrice", path.Field)
				assert.Equal(t, "PurchasedItems.UnitPrice", path.String())
			},
		},
		{
			name: "Coleção sem diferenciar maiúsculas",
			raw:  "payments.Amount",
			validate: func(t *testing.T, path *PropertyPath) {
				assert.Equal(t, Nested, path.Kind)
				assert.Equal(t, mindbodydomain.Payments, path.Collection)
			},
		},
		{name: "Três segmentos", raw: "a.b.c", wantErr: true},
		{name: "Três segmentos com coleção válida", raw: "PurchasedItems.UnitPrice.Value", wantErr: true},
		{name: "Coleção sem campo", raw: "PurchasedItems", wantErr: true},
		{name: "Coleção com ponto final", raw: "Payments.", wantErr: true},
		{name: "Prefixo de coleção não é coleção", raw: "PurchasedItemsXYZ.UnitPrice", wantErr: true},
		{name: "Campo desconhecido na venda", raw: "Unknown", wantErr: true},
		{name: "Campo desconhecido na coleção", raw: "Payments.UnitPrice", wantErr: true},
		{name: "Dois segmentos sem coleção", raw: "ClientId.Name", wantErr: true},
		{name: "Campo diferencia maiúsculas", raw: "clientid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ParsePropertyPath(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidProperty))
				assert.Nil(t, path)
				return
			}

			require.NoError(t, err)
			tt.validate(t, path)
		})
	}
}

func TestPropertyPath_Extract(t *testing.T) {
	salesRep := 7
	notes := "gift"

	sales := []mindbodydomain.Sale{
		{
			ID:         1,
			SalesRepID: &salesRep,
			PurchasedItems: []mindbodydomain.PurchasedItem{
				{UnitPrice: 10, Notes: &notes},
				{UnitPrice: 20, Notes: &notes},
			},
			Payments: []mindbodydomain.Payment{{Amount: 30}},
		},
		{
			ID: 2,
			PurchasedItems: []mindbodydomain.PurchasedItem{
				{UnitPrice: 5},
			},
		},
	}

	tests := []struct {
		name   string
		raw    string
		want   []any
		wantOK bool
	}{
		{
			name:   "Um valor por venda",
			raw:    "Id",
			want:   []any{1, 2},
			wantOK: true,
		},
		{
			name:   "Um valor por item, nunca por venda",
			raw:    "PurchasedItems.UnitPrice",
			want:   []any{10.0, 20.0, 5.0},
			wantOK: true,
		},
		{
			name:   "Coleção vazia não gera valores",
			raw:    "Payments.Amount",
			want:   []any{30.0},
			wantOK: true,
		},
		{
			name:   "Campo opcional ausente em uma venda",
			raw:    "SalesRepId",
			wantOK: false,
		},
		{
			name:   "Campo opcional ausente em um item",
			raw:    "PurchasedItems.Notes",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ParsePropertyPath(tt.raw)
			require.NoError(t, err)

			values, ok := path.Extract(sales)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, values)
			}
		})
	}
}

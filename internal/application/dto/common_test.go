package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttviana/recibo-api/internal/application/dto"
)

// A coerção nunca devolve erro: entrada inválida vira zero.
func TestNumber_Coercao(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"número", `5.25`, 5.25},
		{"inteiro", `42`, 42},
		{"zero", `0`, 0},
		{"negativo", `-3.5`, -3.5},
		{"string numérica", `"5.4321"`, 5.4321},
		{"string vazia", `""`, 0},
		{"string não numérica", `"abc"`, 0},
		{"null", `null`, 0},
		{"objeto", `{"x":1}`, 0},
		{"lista", `[1,2]`, 0},
		{"booleano", `true`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n dto.Number
			require.NoError(t, json.Unmarshal([]byte(tc.in), &n),
				"coerção nunca propaga erro")
			assert.Equal(t, tc.want, n.Float64())
		})
	}
}

func TestNumber_DentroDeStruct(t *testing.T) {
	var in dto.UpdateServiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"7","price":"n/a"}`), &in))

	require.NotNil(t, in.Quantity)
	require.NotNil(t, in.Price)
	assert.Equal(t, 7.0, in.Quantity.Float64())
	assert.Equal(t, 0.0, in.Price.Float64(), "preço não numérico coere para zero")
	assert.Nil(t, in.Description, "campo ausente fica nulo")
}

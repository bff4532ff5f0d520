package dto

import (
	"encoding/json"
	"math"
	"strconv"
)

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Number aceita número JSON ou string numérica. Entrada não numérica
// (ou NaN/Inf) vira zero em vez de propagar erro: as operações do editor
// são totais e nunca falham por digitação inválida.
type Number float64

// UnmarshalJSON implementa a coerção tolerante.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = coerce(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = coerce(f)
		return nil
	}
	*n = 0
	return nil
}

func coerce(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}

// Float64 devolve o valor coerido.
func (n Number) Float64() float64 { return float64(n) }

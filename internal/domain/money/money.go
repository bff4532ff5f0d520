// Package money implementa a aritmética de totais e conversão do recibo.
// Os preços dos itens são denominados na moeda de entrada; a conversão para
// a moeda local acontece uma única vez sobre o subtotal (somar primeiro,
// converter depois) para não acumular erro de arredondamento por linha.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ttviana/recibo-api/internal/domain/entity"
)

// LineUnitLocal preço unitário do item convertido para a moeda local.
func LineUnitLocal(item entity.ServiceItem, rate decimal.Decimal) decimal.Decimal {
	return item.Price.Mul(rate)
}

// LineSubtotalLocal subtotal do item (preço × quantidade) convertido para a moeda local.
func LineSubtotalLocal(item entity.ServiceItem, rate decimal.Decimal) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Mul(rate)
}

// InputSubtotal soma de preço × quantidade na moeda de entrada.
// Lista vazia devolve zero.
func InputSubtotal(services []entity.ServiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range services {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// DocumentTotalLocal total do documento na moeda local: subtotal na moeda
// de entrada multiplicado uma única vez pela taxa de câmbio.
func DocumentTotalLocal(services []entity.ServiceItem, rate decimal.Decimal) decimal.Decimal {
	return InputSubtotal(services).Mul(rate)
}

// FormatAmount formata um valor monetário com exatamente duas casas decimais
// e vírgula como separador decimal (ex.: 895 -> "895,00").
func FormatAmount(v decimal.Decimal) string {
	return strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// FormatRate formata a taxa de câmbio com quatro casas decimais e vírgula
// como separador decimal (ex.: 5.4321 -> "5,4321").
func FormatRate(v decimal.Decimal) string {
	return strings.Replace(v.StringFixed(4), ".", ",", 1)
}

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ttviana/recibo-api/internal/domain/entity"
	"github.com/ttviana/recibo-api/internal/domain/money"
)

// Documento padrão: 6*35 + 1*60 + 5*45 + 4*40 + 3*50 + 1*90 = 895.
func TestDocumentTotalLocal_DocumentoPadrao(t *testing.T) {
	doc := entity.DefaultDocument()

	total := money.DocumentTotalLocal(doc.Services, doc.ExchangeRate)

	assert.True(t, total.Equal(decimal.NewFromInt(895)),
		"total do documento padrão deve ser 895, obtido %s", total)
	assert.Equal(t, "895,00", money.FormatAmount(total),
		"total formatado com duas casas e vírgula decimal")
}

func TestDocumentTotalLocal_ListaVazia(t *testing.T) {
	total := money.DocumentTotalLocal(nil, decimal.NewFromInt(1))

	assert.True(t, total.IsZero(), "lista vazia degrada para zero, não para erro")
	assert.Equal(t, "0,00", money.FormatAmount(total))
}

// A forma canônica é somar na moeda de entrada e converter uma única vez;
// em aritmética decimal o resultado coincide exatamente com converter por
// linha e somar.
func TestDocumentTotalLocal_SomarDepoisConverter(t *testing.T) {
	rate := decimal.NewFromFloat(5.4321)
	services := []entity.ServiceItem{
		{Description: "a", Quantity: 3, Price: decimal.NewFromFloat(33.33)},
		{Description: "b", Quantity: 7, Price: decimal.NewFromFloat(19.99)},
		{Description: "c", Quantity: 1, Price: decimal.NewFromFloat(0.01)},
	}

	canonical := money.DocumentTotalLocal(services, rate)

	porLinha := decimal.Zero
	for _, item := range services {
		porLinha = porLinha.Add(money.LineSubtotalLocal(item, rate))
	}

	assert.True(t, canonical.Equal(porLinha),
		"somar-depois-converter deve coincidir com converter-por-linha: %s vs %s", canonical, porLinha)
	assert.True(t, canonical.Equal(money.InputSubtotal(services).Mul(rate)))
}

func TestLineValues_Conversao(t *testing.T) {
	item := entity.ServiceItem{Description: "x", Quantity: 6, Price: decimal.NewFromFloat(35)}
	rate := decimal.NewFromFloat(5)

	assert.True(t, money.LineUnitLocal(item, rate).Equal(decimal.NewFromInt(175)))
	assert.True(t, money.LineSubtotalLocal(item, rate).Equal(decimal.NewFromInt(1050)))
}

func TestFormatRate_QuatroCasas(t *testing.T) {
	assert.Equal(t, "5,4321", money.FormatRate(decimal.NewFromFloat(5.4321)))
	assert.Equal(t, "1,0000", money.FormatRate(decimal.NewFromInt(1)))
}

func TestFormatAmount_DuasCasas(t *testing.T) {
	assert.Equal(t, "0,00", money.FormatAmount(decimal.Zero))
	assert.Equal(t, "1234,50", money.FormatAmount(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0,10", money.FormatAmount(decimal.NewFromFloat(0.1)))
}

package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttviana/recibo-api/internal/domain/entity"
)

// O conjunto de campos preenchidos varia por perfil: chave Pix e QR só em
// BRL, routing number só em USD, IBAN/SWIFT só em EUR.
func TestPaymentProfiles_CamposPorMoeda(t *testing.T) {
	brl, ok := entity.ProfileFor(entity.CurrencyBRL)
	require.True(t, ok)
	usd, ok := entity.ProfileFor(entity.CurrencyUSD)
	require.True(t, ok)
	eur, ok := entity.ProfileFor(entity.CurrencyEUR)
	require.True(t, ok)

	assert.NotEmpty(t, brl.PixKey, "perfil BRL deve ter chave Pix")
	assert.NotEmpty(t, brl.QRCodeURL, "perfil BRL deve ter QR code")
	assert.Empty(t, brl.IBAN)
	assert.Empty(t, brl.RoutingNumber)

	assert.NotEmpty(t, usd.RoutingNumber, "perfil USD deve ter routing number")
	assert.Empty(t, usd.IBAN)
	assert.Empty(t, usd.PixKey)
	assert.Empty(t, usd.QRCodeURL)

	assert.NotEmpty(t, eur.IBAN, "perfil EUR deve ter IBAN")
	assert.NotEmpty(t, eur.SWIFT, "perfil EUR deve ter SWIFT/BIC")
	assert.Empty(t, eur.RoutingNumber)
	assert.Empty(t, eur.PixKey)

	for code, p := range entity.PaymentProfiles {
		assert.NotEmpty(t, p.Beneficiary, "perfil %s deve ter beneficiário", code)
		assert.NotEmpty(t, p.BankName, "perfil %s deve ter banco", code)
		assert.NotEmpty(t, p.PaymentLink, "perfil %s deve ter link de pagamento", code)
	}
}

func TestSupportedCurrency(t *testing.T) {
	assert.True(t, entity.SupportedCurrency("BRL"))
	assert.True(t, entity.SupportedCurrency("USD"))
	assert.True(t, entity.SupportedCurrency("EUR"))
	assert.False(t, entity.SupportedCurrency("GBP"))
	assert.False(t, entity.SupportedCurrency(""))
}

// O documento padrão é um exemplo completo e válido na moeda local.
func TestDefaultDocument(t *testing.T) {
	doc := entity.DefaultDocument()

	assert.Equal(t, entity.LocalCurrency, doc.Currency)
	assert.True(t, doc.ExchangeRate.Equal(decimal.NewFromInt(1)),
		"na moeda local a taxa é exatamente 1")
	assert.Len(t, doc.Services, 6)
	assert.Equal(t, entity.PaymentProfiles[entity.CurrencyBRL], doc.PaymentDetails,
		"dados de pagamento iniciais devem ser o perfil da moeda local")
	assert.NotEmpty(t, doc.CompanyName)
	assert.NotEmpty(t, doc.ReceiptNumber)
}

// A mescla sobrepõe apenas os campos definidos no perfil novo.
func TestPaymentDetails_Merge(t *testing.T) {
	brl := entity.PaymentProfiles[entity.CurrencyBRL]
	usd := entity.PaymentProfiles[entity.CurrencyUSD]

	merged := brl.Merge(usd)

	assert.Equal(t, usd.Beneficiary, merged.Beneficiary, "campo definido no novo perfil vence")
	assert.Equal(t, usd.BankName, merged.BankName)
	assert.Equal(t, usd.AccountNumber, merged.AccountNumber)
	assert.Equal(t, usd.RoutingNumber, merged.RoutingNumber)
	assert.Equal(t, brl.PixKey, merged.PixKey, "campo não definido no novo perfil é mantido")
	assert.Equal(t, brl.QRCodeURL, merged.QRCodeURL)
	assert.Equal(t, brl.Agency, merged.Agency)

	assert.Equal(t, brl, brl.Merge(entity.PaymentDetails{}),
		"mescla com perfil vazio é identidade")
}

func TestDocumentData_Clone(t *testing.T) {
	doc := entity.DefaultDocument()
	clone := doc.Clone()

	clone.Services[0].Description = "alterado"
	clone.Services = append(clone.Services, entity.ServiceItem{Description: "novo"})

	assert.Equal(t, "Assinaturas de Email", doc.Services[0].Description,
		"mutação no clone não pode vazar para o original")
	assert.Len(t, doc.Services, 6)
}

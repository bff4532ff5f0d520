package dto

import "github.com/ttviana/recibo-api/internal/domain/entity"

// UpdateReceiptRequest merge raso dos campos de topo do documento.
// Apenas os campos presentes (não nulos) são aplicados.
type UpdateReceiptRequest struct {
	CompanyName    *string `json:"companyName"`
	ReceiptNumber  *string `json:"receiptNumber"`
	Date           *string `json:"date"`
	Client         *string `json:"client"`
	BudgetLink     *string `json:"budgetLink"`
	ServiceDetails *string `json:"serviceDetails"`
	Signature      *string `json:"signature"`
	SignatureImage *string `json:"signatureImage"`
}

// SetCurrencyRequest troca da moeda de entrada do documento.
type SetCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,oneof=BRL USD EUR"`
}

// SetExchangeRateRequest ajuste manual da taxa de câmbio (ex.: taxa
// histórica para a data do orçamento). Rejeitado na moeda local.
type SetExchangeRateRequest struct {
	ExchangeRate Number `json:"exchangeRate"`
}

// UpdateServiceRequest edição de um item por posição; apenas os campos
// presentes são substituídos.
type UpdateServiceRequest struct {
	Description *string `json:"description"`
	Quantity    *Number `json:"quantity"`
	Price       *Number `json:"price"`
}

// ReceiptResponse snapshot do documento com o estado derivado exibido no editor.
type ReceiptResponse struct {
	Document    entity.DocumentData `json:"document"`
	RateLoading bool                `json:"rateLoading"`
	TotalLocal  string              `json:"totalLocal"`  // total formatado em BRL, ex.: "895,00"
	RateDisplay string              `json:"rateDisplay"` // taxa formatada com 4 casas, ex.: "5,4321"
}

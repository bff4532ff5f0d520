package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ttviana/recibo-api/internal/domain/entity"
)

// RateQuoteService porta para o serviço externo de cotação de câmbio.
// LastBid devolve o preço de compra (bid) atual de 1 unidade de `from` em `to`.
// Quando a resposta chega mas não traz o par esperado (ou o bid não é
// numérico), a implementação devolve erro embrulhando domain.ErrRateUnavailable;
// falhas de rede/HTTP devolvem o erro original embrulhado.
type RateQuoteService interface {
	LastBid(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ReceiptPDFGenerator porta para a representação gráfica do recibo em PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, doc entity.DocumentData) ([]byte, error)
}

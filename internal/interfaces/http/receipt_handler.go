package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ttviana/recibo-api/internal/application/dto"
	"github.com/ttviana/recibo-api/internal/application/receipt"
	"github.com/ttviana/recibo-api/internal/domain"
	"github.com/ttviana/recibo-api/internal/domain/entity"
	"github.com/ttviana/recibo-api/internal/domain/money"
)

// ReceiptHandler trata as requisições HTTP de edição do recibo.
type ReceiptHandler struct {
	store *receipt.Store
}

// NewReceiptHandler constrói o handler.
func NewReceiptHandler(store *receipt.Store) *ReceiptHandler {
	return &ReceiptHandler{store: store}
}

func toReceiptResponse(doc entity.DocumentData, rateLoading bool) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		Document:    doc,
		RateLoading: rateLoading,
		TotalLocal:  money.FormatAmount(money.DocumentTotalLocal(doc.Services, doc.ExchangeRate)),
		RateDisplay: money.FormatRate(doc.ExchangeRate),
	}
}

// Get devolve o snapshot atual do documento.
// GET /api/receipt
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	doc, loading := h.store.Snapshot()
	return c.JSON(toReceiptResponse(doc, loading))
}

// Update aplica um merge raso dos campos de topo.
// PATCH /api/receipt
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReceiptRequest
	if err := BindAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	doc, loading := h.store.UpdateFields(in)
	return c.JSON(toReceiptResponse(doc, loading))
}

// SetCurrency troca a moeda de entrada e dispara a sincronização de
// perfil de pagamento e taxa de câmbio.
// PUT /api/receipt/currency
func (h *ReceiptHandler) SetCurrency(c *fiber.Ctx) error {
	var in dto.SetCurrencyRequest
	if err := BindAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "moeda inválida"})
	}
	doc, loading, err := h.store.SetCurrency(in.Currency)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCurrency) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_CURRENCY", Message: "moeda não suportada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReceiptResponse(doc, loading))
}

// SetExchangeRate ajusta manualmente a taxa de câmbio (moeda não local).
// PUT /api/receipt/exchange-rate
func (h *ReceiptHandler) SetExchangeRate(c *fiber.Ctx) error {
	var in dto.SetExchangeRateRequest
	if err := BindAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	doc, loading, err := h.store.SetExchangeRate(in.ExchangeRate.Float64())
	if err != nil {
		if errors.Is(err, domain.ErrRateNotEditable) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RATE_LOCKED", Message: "taxa de câmbio fixa em 1 na moeda local"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReceiptResponse(doc, loading))
}

// AddService acrescenta um item de serviço com os valores padrão.
// POST /api/receipt/services
func (h *ReceiptHandler) AddService(c *fiber.Ctx) error {
	doc, loading := h.store.AddService()
	return c.Status(fiber.StatusCreated).JSON(toReceiptResponse(doc, loading))
}

// UpdateService edita um item de serviço por posição.
// PUT /api/receipt/services/:index
func (h *ReceiptHandler) UpdateService(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.UpdateServiceRequest
	if err := BindAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	doc, loading, err := h.store.UpdateService(index, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReceiptResponse(doc, loading))
}

// RemoveService remove um item de serviço por posição.
// DELETE /api/receipt/services/:index
func (h *ReceiptHandler) RemoveService(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	doc, loading, err := h.store.RemoveService(index)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReceiptResponse(doc, loading))
}

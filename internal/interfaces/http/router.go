package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ttviana/recibo-api/internal/application/ports"
	"github.com/ttviana/recibo-api/internal/application/receipt"
	"github.com/ttviana/recibo-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Store *receipt.Store
	PDF   ports.ReceiptPDFGenerator
	Log   *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	exportHandler := NewExportHandler(deps.Store, deps.PDF, deps.Log)
	app.Get("/preview", exportHandler.Preview)

	api := app.Group("/api")

	// Documento (instância única da sessão)
	receiptGroup := api.Group("/receipt")
	receiptHandler := NewReceiptHandler(deps.Store)
	receiptGroup.Get("/", receiptHandler.Get)
	receiptGroup.Patch("/", receiptHandler.Update)
	receiptGroup.Put("/currency", receiptHandler.SetCurrency)
	receiptGroup.Put("/exchange-rate", receiptHandler.SetExchangeRate)

	// Itens de serviço (identidade por posição)
	receiptGroup.Post("/services", receiptHandler.AddService)
	receiptGroup.Put("/services/:index", receiptHandler.UpdateService)
	receiptGroup.Delete("/services/:index", receiptHandler.RemoveService)

	// Exportações
	receiptGroup.Get("/export", exportHandler.ExportHTML)
	receiptGroup.Get("/pdf", exportHandler.ExportPDF)
}

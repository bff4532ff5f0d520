package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ttviana/recibo-api/internal/application/ports"
	"github.com/ttviana/recibo-api/internal/application/receipt"
	"github.com/ttviana/recibo-api/internal/infrastructure/render"
	"github.com/ttviana/recibo-api/pkg/logger"
)

// ExportHandler trata a pré-visualização e as exportações do recibo.
type ExportHandler struct {
	store *receipt.Store
	pdf   ports.ReceiptPDFGenerator
	log   *logger.Logger
}

// NewExportHandler constrói o handler.
func NewExportHandler(store *receipt.Store, pdf ports.ReceiptPDFGenerator, log *logger.Logger) *ExportHandler {
	return &ExportHandler{store: store, pdf: pdf, log: log}
}

// Preview devolve a página completa do recibo renderizado (a visão viva
// que a exportação captura).
// GET /preview
func (h *ExportHandler) Preview(c *fiber.Ctx) error {
	doc, _ := h.store.Snapshot()
	page, err := render.BuildStandalone(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("renderizar pré-visualização")
		return c.Status(fiber.StatusInternalServerError).SendString("erro ao renderizar o recibo")
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

// ExportHTML devolve o documento HTML autocontido como download.
// A exportação é fire-and-forget: qualquer falha de renderização aborta
// sem arquivo parcial (204) e a sessão de edição segue utilizável.
// GET /api/receipt/export
func (h *ExportHandler) ExportHTML(c *fiber.Ctx) error {
	doc, _ := h.store.Snapshot()
	page, err := render.BuildStandalone(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("exportação HTML abortada")
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+render.ExportFilename(doc.ReceiptNumber)+`"`)
	c.Type("html", "utf-8")
	return c.Send(page)
}

// ExportPDF devolve a representação gráfica do recibo em PDF.
// GET /api/receipt/pdf
func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	doc, _ := h.store.Snapshot()
	out, err := h.pdf.GenerateReceiptPDF(c.Context(), doc)
	if err != nil {
		h.log.Error().Err(err).Msg("exportação PDF abortada")
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+render.PDFFilename(doc.ReceiptNumber)+`"`)
	c.Type("pdf")
	return c.Send(out)
}

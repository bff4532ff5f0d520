// Package pdf implementa a representação gráfica do recibo em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título  │  Recibo Nº + Data               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + referência do serviço                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Unitário | Subtotal               │
//	│  TOTAIS: Valor Total Bruto (+ nota de conversão)             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGAMENTO: dados bancários do perfil + QR da chave Pix      │
//	│  ASSINATURA                                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ttviana/recibo-api/internal/application/ports"
	"github.com/ttviana/recibo-api/internal/domain/entity"
	"github.com/ttviana/recibo-api/internal/domain/money"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 160, Green: 39, Blue: 246}  // #A027F6
	colorSecondary = &props.Color{Red: 226, Green: 42, Blue: 186}  // #E22ABA
	colorGray      = &props.Color{Red: 120, Green: 120, Blue: 120}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificação em tempo de compilação do contrato da porta.
var _ ports.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ports.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF gera o PDF e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, doc entity.DocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+doc.ReceiptNumber, true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(doc))
	for _, r := range tableDetailRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range paymentRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(signatureRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: empresa + título (esq) e número do recibo + data (dir).
func headerRow(doc entity.DocumentData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RECIBO DE PRESTAÇÃO DE SERVIÇOS", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO Nº", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 1,
			}),
			text.New(doc.ReceiptNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
				Color: colorPrimary,
			}),
			text.New("Data: "+doc.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: cliente + referência do serviço.
func clientRow(doc entity.DocumentData) core.Row {
	ref := doc.ServiceDetails
	if ref == "" {
		ref = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Client, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Referente à: "+ref, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de serviços.
func tableHeaderRow(doc entity.DocumentData) core.Row {
	unit, subtotal := "Unitário", "Subtotal"
	if doc.Currency != entity.LocalCurrency {
		unit += " (R$)"
		subtotal += " (R$)"
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd", 1, align.Center),
		h("Descrição", 6, align.Left),
		h(unit, 2, align.Right),
		h(subtotal, 3, align.Right),
	)
}

// tableDetailRows: uma linha por item de serviço, com valores convertidos.
func tableDetailRows(doc entity.DocumentData) []core.Row {
	result := make([]core.Row, 0, len(doc.Services))
	for _, item := range doc.Services {
		unit := "R$ " + money.FormatAmount(money.LineUnitLocal(item, doc.ExchangeRate))
		if doc.Currency != entity.LocalCurrency {
			unit += fmt.Sprintf(" (%s %s)", item.Price.StringFixed(2), doc.Currency)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+money.FormatAmount(money.LineSubtotalLocal(item, doc.ExchangeRate)),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total do documento, com a nota de conversão quando a moeda
// de entrada não é a local.
func totalsRow(doc entity.DocumentData) core.Row {
	total := "R$ " + money.FormatAmount(money.DocumentTotalLocal(doc.Services, doc.ExchangeRate))

	cols := []core.Col{
		col.New(6).Add(
			text.New("VALOR TOTAL BRUTO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorGray, Top: 2, Right: 2,
			}),
		),
		col.New(6).Add(
			text.New(total, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimary, Top: 1, Right: 1,
			}),
		),
	}
	r := row.New(12).Add(cols...)
	if doc.Currency == entity.LocalCurrency {
		return r
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("VALOR TOTAL BRUTO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorGray, Top: 2, Right: 2,
			}),
			text.New(
				fmt.Sprintf("Conversão: 1 %s = %s BRL", doc.Currency, money.FormatRate(doc.ExchangeRate)),
				props.Text{Size: 7, Align: align.Right, Color: colorGray, Top: 8, Right: 2},
			),
		),
		col.New(6).Add(
			text.New(total, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimary, Top: 1, Right: 1,
			}),
		),
	)
}

// paymentRows: dados bancários do perfil ativo + QR da chave Pix (só BRL).
func paymentRows(doc entity.DocumentData) []core.Row {
	p := doc.PaymentDetails

	title := "DADOS BANCÁRIOS (Wise International)"
	if doc.Currency == entity.LocalCurrency {
		title = "DADOS BANCÁRIOS (Pix/Transferência)"
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Beneficiário: "+p.Beneficiary, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Banco / Instituição: "+p.BankName, props.Text{Size: 8, Top: 1}),
		)),
	}

	detail := func(label, value string) {
		if value == "" {
			return
		}
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(label+": "+value, props.Text{Size: 8, Top: 0.5, Color: colorGray}),
		)))
	}
	detail("Cód. Banco", p.BankCode)
	detail("Endereço", p.BankAddress)
	if p.Agency != "" {
		detail("Agência", p.Agency)
		detail("Conta", p.AccountNumber)
	} else if p.AccountNumber != "" {
		label := "Conta"
		if p.AccountType != "" {
			label = "Conta (" + p.AccountType + ")"
		}
		detail(label, p.AccountNumber)
	}
	detail("Routing Number (ACH/Wire)", p.RoutingNumber)
	detail("IBAN", p.IBAN)
	detail("SWIFT / BIC", p.SWIFT)
	detail("Link de pagamento", p.PaymentLink)

	// QR gerado a partir da chave Pix; em moedas internacionais não há Pix.
	if p.PixKey != "" {
		rows = append(rows, row.New(3))
		rows = append(rows, row.New(34).Add(
			col.New(4).Add(code.NewQr(p.PixKey, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escaneie para pagar via Pix", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorSecondary,
				}),
				text.New("Chave Pix: "+p.PixKey, props.Text{
					Size: 7, Top: 12, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	return rows
}

// signatureRow: nome do assinante sobre a linha de assinatura.
func signatureRow(doc entity.DocumentData) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Top: 4, Color: colorGray}),
			text.New(doc.Signature, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9, Color: colorSecondary,
			}),
			text.New("DIGITAL DESIGN SPECIALIST", props.Text{
				Size: 6.5, Top: 14, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("AUTHENTIC DOCUMENT • NO COPY • 2025", props.Text{
				Size: 6.5, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

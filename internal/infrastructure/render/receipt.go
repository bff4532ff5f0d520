// Package render gera o HTML do recibo: o fragmento renderizado do
// documento (função pura do estado) e o arquivo HTML autocontido para
// download, com os estilos da página embutidos.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ttviana/recibo-api/internal/domain/entity"
	"github.com/ttviana/recibo-api/internal/domain/money"
)

// Paleta do documento.
const (
	colorPrimary   = "#A027F6"
	colorSecondary = "#E22ABA"
	colorAccent1   = "#FFC200"
	colorAccent3   = "#02FFCC"
	colorAccent4   = "#26EBEB"
)

// lineView uma linha da tabela de serviços com os valores já formatados.
type lineView struct {
	Description   string
	Quantity      int
	UnitLocal     string // preço unitário convertido, ex.: "190,00"
	SubtotalLocal string
	UnitInput     string // preço na moeda de entrada, ex.: "35.00" (anotação quando a moeda não é a local)
}

// receiptView modelo de visão do fragmento do recibo.
type receiptView struct {
	Doc          entity.DocumentData
	IsLocal      bool
	Lines        []lineView
	Total        string
	Rate         string
	SignatureURL string
	QRCodeURL    string
	PaymentTitle string

	Primary   string
	Secondary string
	Accent1   string
	Accent3   string
	Accent4   string
}

func newReceiptView(doc entity.DocumentData) receiptView {
	isLocal := doc.Currency == entity.LocalCurrency

	lines := make([]lineView, 0, len(doc.Services))
	for _, item := range doc.Services {
		lines = append(lines, lineView{
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitLocal:     money.FormatAmount(money.LineUnitLocal(item, doc.ExchangeRate)),
			SubtotalLocal: money.FormatAmount(money.LineSubtotalLocal(item, doc.ExchangeRate)),
			UnitInput:     item.Price.StringFixed(2),
		})
	}

	title := "Wise International"
	if isLocal {
		title = "Pix/Transferência"
	}

	return receiptView{
		Doc:          doc,
		IsLocal:      isLocal,
		Lines:        lines,
		Total:        money.FormatAmount(money.DocumentTotalLocal(doc.Services, doc.ExchangeRate)),
		Rate:         money.FormatRate(doc.ExchangeRate),
		SignatureURL: FormatImageURL(doc.SignatureImage),
		QRCodeURL:    FormatImageURL(doc.PaymentDetails.QRCodeURL),
		PaymentTitle: title,
		Primary:      colorPrimary,
		Secondary:    colorSecondary,
		Accent1:      colorAccent1,
		Accent3:      colorAccent3,
		Accent4:      colorAccent4,
	}
}

// RenderReceipt renderiza o fragmento HTML do recibo a partir do documento.
func RenderReceipt(doc entity.DocumentData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, newReceiptView(doc)); err != nil {
		return "", fmt.Errorf("render: executar template do recibo: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptHTML))

// receiptHTML fragmento do recibo. Imagens externas (assinatura e QR) têm
// onerror para sumir em vez de exibir o ícone de imagem quebrada.
const receiptHTML = `<div id="receipt-document" class="bg-white p-12 shadow-2xl mx-auto max-w-4xl print-area min-h-[1123px] relative flex flex-col border-t-8" style="border-color: {{.Primary}}">
  <div class="flex justify-between items-start mb-12">
    <div>
      <h1 class="text-4xl font-extrabold tracking-tight mb-2 uppercase" style="color: {{.Primary}}">{{.Doc.CompanyName}}</h1>
      <p class="text-gray-500 font-medium tracking-wide">RECIBO DE PRESTA&Ccedil;&Atilde;O DE SERVI&Ccedil;OS</p>
    </div>
    <div class="text-right">
      <div class="p-4 rounded-lg inline-block" style="background-color: {{.Primary}}10">
        <p class="text-sm font-bold uppercase tracking-widest text-gray-400 mb-1">Recibo N&ordm;</p>
        <p class="text-lg font-mono font-bold" style="color: {{.Primary}}">{{.Doc.ReceiptNumber}}</p>
      </div>
    </div>
  </div>

  <div class="grid grid-cols-2 gap-8 mb-12 border-b border-gray-100 pb-12">
    <div>
      <h3 class="text-xs font-bold text-gray-400 uppercase tracking-widest mb-3">Cliente</h3>
      <p class="text-xl font-semibold text-gray-800 mb-4">{{.Doc.Client}}</p>
      {{if .Doc.ServiceDetails}}
      <div class="mt-6">
        <h3 class="text-xs font-bold text-gray-400 uppercase tracking-widest mb-2">Referente &agrave;</h3>
        <p class="text-base font-medium text-gray-700 leading-snug">{{.Doc.ServiceDetails}}</p>
      </div>
      {{end}}
    </div>
    <div class="text-right">
      <h3 class="text-xs font-bold text-gray-400 uppercase tracking-widest mb-3">Data de Emiss&atilde;o</h3>
      <p class="text-xl font-semibold text-gray-800">{{.Doc.Date}}</p>
    </div>
  </div>

  <div class="flex-grow">
    <table class="w-full text-left mb-6">
      <thead>
        <tr class="border-b-2" style="border-color: {{.Accent4}}">
          <th class="py-4 text-xs font-bold text-gray-400 uppercase tracking-widest">Descri&ccedil;&atilde;o</th>
          <th class="py-4 text-xs font-bold text-gray-400 uppercase tracking-widest text-center">Qtd</th>
          <th class="py-4 text-xs font-bold text-gray-400 uppercase tracking-widest text-right">Unit&aacute;rio{{if not .IsLocal}} (R$){{end}}</th>
          <th class="py-4 text-xs font-bold text-gray-400 uppercase tracking-widest text-right">Subtotal{{if not .IsLocal}} (R$){{end}}</th>
        </tr>
      </thead>
      <tbody class="divide-y divide-gray-50">
        {{range .Lines}}
        <tr>
          <td class="py-4"><span class="font-semibold text-gray-800 block">{{.Description}}</span></td>
          <td class="py-4 text-center font-medium text-gray-600">{{.Quantity}}</td>
          <td class="py-4 text-right font-medium text-gray-800">
            R$ {{.UnitLocal}}
            {{if not $.IsLocal}}<span class="block text-[9px] text-gray-400">({{.UnitInput}} {{$.Doc.Currency}})</span>{{end}}
          </td>
          <td class="py-4 text-right font-bold text-gray-800">R$ {{.SubtotalLocal}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr class="border-t-2" style="border-color: {{.Accent4}}">
          <td colspan="3" class="py-6 text-right">
            <p class="font-bold text-gray-400 uppercase tracking-widest text-sm">Valor Total Bruto</p>
            {{if not .IsLocal}}
            <p class="text-[10px] text-gray-400 mt-1">Convers&atilde;o: 1 {{.Doc.Currency}} = {{.Rate}} BRL</p>
            {{end}}
          </td>
          <td class="py-6 text-right text-2xl font-black" style="color: {{.Primary}}">R$ {{.Total}}</td>
        </tr>
      </tfoot>
    </table>

    <div class="bg-gray-50 p-6 rounded-xl border-l-4 mb-8" style="border-color: {{.Accent1}}">
      <p class="text-sm font-semibold text-gray-500 mb-1">Refer&ecirc;ncia de Or&ccedil;amento:</p>
      <a href="{{.Doc.BudgetLink}}" target="_blank" rel="noopener noreferrer" class="text-sm font-bold truncate block hover:underline" style="color: {{.Primary}}">{{.Doc.BudgetLink}}</a>
    </div>

    <div class="p-8 rounded-2xl border-2 grid grid-cols-1 md:grid-cols-3 gap-8" style="border-color: {{.Accent3}}40">
      <div class="md:col-span-2 flex flex-col justify-between">
        <div>
          <h3 class="text-sm font-bold uppercase tracking-widest mb-6 flex items-center" style="color: {{.Primary}}">
            <span class="w-2 h-2 rounded-full mr-2" style="background-color: {{.Accent3}}"></span>
            Dados Banc&aacute;rios ({{.PaymentTitle}})
          </h3>

          {{with .Doc.PaymentDetails}}
          <div class="grid grid-cols-1 sm:grid-cols-2 gap-y-5 gap-x-4">
            <div class="col-span-2">
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Benefici&aacute;rio</p>
              <p class="text-sm font-bold text-gray-800">{{.Beneficiary}}</p>
            </div>

            <div class="col-span-2">
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Banco / Institui&ccedil;&atilde;o</p>
              <p class="text-sm font-semibold text-gray-800">{{.BankName}}</p>
              {{if .BankCode}}<p class="text-[10px] text-gray-500 font-medium">C&oacute;d. Banco: {{.BankCode}}</p>{{end}}
              {{if .BankAddress}}<p class="text-[10px] text-gray-500 font-medium mt-0.5">{{.BankAddress}}</p>{{end}}
            </div>

            {{if .Agency}}
            <div>
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Ag&ecirc;ncia / Conta</p>
              <p class="text-sm font-mono font-semibold text-gray-800">Ag. {{.Agency}}</p>
              <p class="text-sm font-mono font-semibold text-gray-800">CC. {{.AccountNumber}}</p>
            </div>
            {{else if .AccountNumber}}
            <div>
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Conta {{if .AccountType}}({{.AccountType}}){{else}}(Conta){{end}}</p>
              <p class="text-sm font-mono font-semibold text-gray-800">{{.AccountNumber}}</p>
            </div>
            {{end}}

            {{if .RoutingNumber}}
            <div>
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Routing Number (ACH/Wire)</p>
              <p class="text-sm font-mono font-semibold text-gray-800">{{.RoutingNumber}}</p>
            </div>
            {{end}}

            {{if .IBAN}}
            <div class="col-span-2">
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">IBAN</p>
              <p class="text-sm font-mono font-semibold text-gray-800 break-all">{{.IBAN}}</p>
            </div>
            {{end}}

            {{if .SWIFT}}
            <div>
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">SWIFT / BIC</p>
              <p class="text-sm font-mono font-semibold text-gray-800">{{.SWIFT}}</p>
            </div>
            {{end}}

            {{if .PixKey}}
            <div>
              <p class="text-[10px] font-bold text-gray-400 uppercase mb-1">Chave Pix</p>
              <p class="text-xs font-mono font-bold text-gray-800 break-all bg-gray-100 p-2 rounded border border-gray-200">{{.PixKey}}</p>
            </div>
            {{end}}
          </div>
          {{end}}
        </div>

        {{if .Doc.PaymentDetails.PaymentLink}}
        <div class="mt-6">
          <a href="{{.Doc.PaymentDetails.PaymentLink}}" target="_blank" rel="noopener noreferrer" class="block bg-purple-50 hover:bg-purple-100 border border-purple-100 rounded-lg p-3 flex items-center justify-between">
            <div class="min-w-0 pr-4">
              <p class="text-[10px] font-bold text-purple-400 uppercase">Link de Pagamento R&aacute;pido</p>
              <p class="text-xs font-bold text-purple-700 truncate">{{.Doc.PaymentDetails.PaymentLink}}</p>
            </div>
          </a>
        </div>
        {{end}}
      </div>

      <div class="flex flex-col gap-4">
        <div class="bg-slate-50 p-6 rounded-xl flex flex-col justify-center items-center text-center border" style="border-color: {{.Primary}}20">
          <p class="text-xs font-bold text-gray-400 uppercase mb-2">Total a Pagar</p>
          <p class="text-3xl font-black leading-none" style="color: {{.Secondary}}">R$ {{.Total}}</p>
          <p class="text-[10px] text-gray-400 mt-2 uppercase font-medium">Isento de impostos retidos</p>
        </div>

        {{if .QRCodeURL}}
        <div class="bg-white p-4 rounded-xl border-2 border-dashed border-gray-200 flex flex-col items-center justify-center flex-grow">
          <img src="{{.QRCodeURL}}" alt="QR Code Pix" class="w-32 h-32 object-contain mix-blend-multiply mb-2" onerror="this.style.display='none'">
          <p class="text-[9px] font-bold text-gray-400 uppercase tracking-widest text-center">Escaneie para Pagar</p>
        </div>
        {{else}}
        <div class="bg-white p-4 rounded-xl border-2 border-dashed border-gray-200 flex flex-col items-center justify-center flex-grow">
          <p class="text-xs font-bold text-gray-400 text-center">Transfer&ecirc;ncia Internacional</p>
          <p class="text-[10px] text-gray-300 text-center mt-1">Use os dados ao lado para realizar a transfer&ecirc;ncia via Wise ou SWIFT.</p>
        </div>
        {{end}}
      </div>
    </div>
  </div>

  <div class="mt-12 border-t pt-10 flex justify-between items-end">
    <div>
      <p class="text-xs text-gray-400 uppercase font-bold tracking-widest mb-6">Assinatura Digital</p>
      <div class="relative h-20 mb-2 flex items-end justify-start">
        {{if .SignatureURL}}<img src="{{.SignatureURL}}" alt="Assinatura" class="h-full object-contain -ml-4" onerror="this.style.display='none'">{{end}}
      </div>
      <div class="w-64 h-px bg-gray-200 mb-2"></div>
      <p class="text-lg font-bold" style="color: {{.Secondary}}">{{.Doc.Signature}}</p>
      <p class="text-[10px] text-gray-400 font-medium uppercase tracking-widest">Digital Design Specialist</p>
    </div>
    <div class="text-right">
      <p class="text-[10px] text-gray-300 uppercase tracking-[0.2em]">Authentic Document &bull; No Copy &bull; 2025</p>
    </div>
  </div>
</div>`

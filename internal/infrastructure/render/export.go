package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ttviana/recibo-api/internal/domain/entity"
)

// pageStyles estilos da página embutidos no documento exportado, para que
// o arquivo renderize igual fora da aplicação.
const pageStyles = `
    body { font-family: 'Montserrat', sans-serif; background: #fff; }
    .print-area { box-shadow: none !important; border: none !important; margin: 0 auto !important; }
    @media print { .no-print { display: none !important; } }
`

var standaloneTmpl = template.Must(template.New("standalone").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Recibo - {{.ReceiptNumber}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <link href="https://fonts.googleapis.com/css2?family=Montserrat:wght@300;400;500;600;700;800&display=swap" rel="stylesheet">
    <style>{{.Styles}}</style>
</head>
<body>
    <div class="p-4 md:p-12">
    {{.Receipt}}
    </div>
    <div class="no-print text-center mt-8 pb-12">
      <button onclick="window.print()" style="background:{{.Primary}}; color:white; padding: 14px 32px; border-radius: 12px; font-weight: bold; cursor: pointer; border: none; box-shadow: 0 10px 15px -3px rgba(160, 39, 246, 0.3);">
        Imprimir PDF (Ctrl+P)
      </button>
    </div>
</body>
</html>
`))

type standaloneView struct {
	ReceiptNumber string
	Styles        template.CSS
	Receipt       template.HTML
	Primary       string
}

// BuildStandalone gera o documento HTML autocontido do recibo: fragmento
// renderizado, estilos da página, fonte e Tailwind por CDN e um botão de
// impressão para o destinatário gerar o PDF sem a aplicação original.
func BuildStandalone(doc entity.DocumentData) ([]byte, error) {
	receipt, err := RenderReceipt(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = standaloneTmpl.Execute(&buf, standaloneView{
		ReceiptNumber: doc.ReceiptNumber,
		Styles:        template.CSS(pageStyles),
		Receipt:       receipt,
		Primary:       colorPrimary,
	})
	if err != nil {
		return nil, fmt.Errorf("render: executar template standalone: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename nome determinístico do arquivo exportado a partir do
// número do recibo, saneado para uso como nome de arquivo.
func ExportFilename(receiptNumber string) string {
	return "Recibo_" + sanitizeFilename(receiptNumber) + ".html"
}

// PDFFilename nome do arquivo da representação em PDF.
func PDFFilename(receiptNumber string) string {
	return "Recibo_" + sanitizeFilename(receiptNumber) + ".pdf"
}

func sanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "recibo"
	}
	return b.String()
}

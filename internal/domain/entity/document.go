package entity

import "github.com/shopspring/decimal"

// Moedas de entrada suportadas. BRL é a moeda local de liquidação:
// os totais são sempre exibidos em BRL, convertidos pela taxa de câmbio.
const (
	CurrencyBRL = "BRL"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"

	// LocalCurrency moeda de liquidação fixa do documento.
	LocalCurrency = CurrencyBRL
)

// SupportedCurrency indica se o código de moeda possui perfil de pagamento cadastrado.
func SupportedCurrency(code string) bool {
	_, ok := PaymentProfiles[code]
	return ok
}

// ServiceItem um item da lista de serviços. O preço é denominado na moeda
// de entrada selecionada no documento; a posição no slice é a identidade.
type ServiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// PaymentDetails dados bancários do beneficiário. O conjunto de campos
// preenchidos varia por moeda: IBAN/SWIFT só em EUR, routing number só em
// USD, chave Pix e QR code só em BRL.
type PaymentDetails struct {
	Beneficiary   string `json:"beneficiary"`
	BankName      string `json:"bankName"`
	BankAddress   string `json:"bankAddress,omitempty"`
	BankCode      string `json:"bankCode,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
	Agency        string `json:"agency,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	SWIFT         string `json:"swift,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	PixKey        string `json:"pixKey,omitempty"`
	PaymentLink   string `json:"paymentLink,omitempty"`
	QRCodeURL     string `json:"qrCodeUrl,omitempty"`
}

// Merge devolve os dados de pagamento com os campos definidos em other
// sobrepostos aos atuais. Campos que other não define (vazios) são
// mantidos: é a semântica de mescla da troca de perfil, em que o perfil
// novo vence apenas nos campos que declara.
func (d PaymentDetails) Merge(other PaymentDetails) PaymentDetails {
	out := d
	if other.Beneficiary != "" {
		out.Beneficiary = other.Beneficiary
	}
	if other.BankName != "" {
		out.BankName = other.BankName
	}
	if other.BankAddress != "" {
		out.BankAddress = other.BankAddress
	}
	if other.BankCode != "" {
		out.BankCode = other.BankCode
	}
	if other.AccountType != "" {
		out.AccountType = other.AccountType
	}
	if other.Agency != "" {
		out.Agency = other.Agency
	}
	if other.AccountNumber != "" {
		out.AccountNumber = other.AccountNumber
	}
	if other.IBAN != "" {
		out.IBAN = other.IBAN
	}
	if other.SWIFT != "" {
		out.SWIFT = other.SWIFT
	}
	if other.RoutingNumber != "" {
		out.RoutingNumber = other.RoutingNumber
	}
	if other.PixKey != "" {
		out.PixKey = other.PixKey
	}
	if other.PaymentLink != "" {
		out.PaymentLink = other.PaymentLink
	}
	if other.QRCodeURL != "" {
		out.QRCodeURL = other.QRCodeURL
	}
	return out
}

// DocumentData agregado raiz do recibo. Instância única por sessão,
// criada a partir de DefaultDocument e mantida apenas em memória.
type DocumentData struct {
	CompanyName    string          `json:"companyName"`
	ReceiptNumber  string          `json:"receiptNumber"`
	Date           string          `json:"date"` // texto livre de emissão, não é parseada
	Client         string          `json:"client"`
	BudgetLink     string          `json:"budgetLink"`
	ServiceDetails string          `json:"serviceDetails,omitempty"`
	Currency       string          `json:"currency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"` // 1 unidade de Currency em LocalCurrency; sempre 1 quando Currency == LocalCurrency
	PaymentDetails PaymentDetails  `json:"paymentDetails"`
	Services       []ServiceItem   `json:"services"`
	Signature      string          `json:"signature"`
	SignatureImage string          `json:"signatureImage,omitempty"`
}

// Clone devolve uma cópia profunda do documento (o slice de serviços é copiado).
func (d DocumentData) Clone() DocumentData {
	out := d
	out.Services = make([]ServiceItem, len(d.Services))
	copy(out.Services, d.Services)
	return out
}

package entity

import "github.com/shopspring/decimal"

// PaymentProfiles perfis de pagamento estáticos por moeda. Na troca de
// moeda o perfil é mesclado sobre os dados de pagamento do documento:
// os campos que o perfil define vencem, os demais são mantidos.
var PaymentProfiles = map[string]PaymentDetails{
	CurrencyBRL: {
		Beneficiary:   "TIAGO TAURIAN VIANA",
		BankName:      "Wise Brasil Instituição de Pagamento Ltda.",
		BankCode:      "40571694",
		AccountType:   "Conta Pagamento",
		Agency:        "0001",
		AccountNumber: "36651195",
		PixKey:        "361477ef-a092-4062-97c6-333ff7fcfbaa",
		PaymentLink:   "https://wise.com/pay/me/tiagot1047",
		QRCodeURL:     "https://i.imgur.com/u9LskSc.png",
	},
	CurrencyUSD: {
		Beneficiary:   "Tiago Taurian Viana",
		BankName:      "Community Federal Savings Bank",
		BankAddress:   "89-16 Jamaica Ave, Woodhaven, NY 11421, United States",
		AccountType:   "Checking",
		AccountNumber: "8313590280",
		RoutingNumber: "026073150",
		PaymentLink:   "https://wise.com/pay/me/tiagot1047",
	},
	CurrencyEUR: {
		Beneficiary:   "Tiago Taurian Viana",
		BankName:      "Wise Europe SA",
		BankAddress:   "Rue du Trône 100, 3rd floor, Brussels 1050, Belgium",
		AccountNumber: "36651195",
		IBAN:          "BE79 9677 1135 2283",
		SWIFT:         "TRWIBEB1XXX",
		PaymentLink:   "https://wise.com/pay/me/tiagot1047",
	},
}

// ProfileFor devolve o perfil de pagamento da moeda, se cadastrado.
func ProfileFor(currency string) (PaymentDetails, bool) {
	p, ok := PaymentProfiles[currency]
	return p, ok
}

// DefaultDocument devolve o documento inicial da sessão: um recibo de
// exemplo completo e válido, na moeda local.
func DefaultDocument() DocumentData {
	return DocumentData{
		CompanyName:    "PREDMED Portimão",
		ReceiptNumber:  "20251222-001",
		Date:           "22 de Dezembro de 2025",
		Client:         "Paulo e Sara",
		BudgetLink:     "https://sites.google.com/view/proposta-prontmed/proposta",
		Currency:       LocalCurrency,
		ExchangeRate:   decimal.NewFromInt(1),
		PaymentDetails: PaymentProfiles[LocalCurrency],
		Services: []ServiceItem{
			{Description: "Assinaturas de Email", Quantity: 6, Price: decimal.NewFromFloat(35.00)},
			{Description: "Arte de cartão de Visitas", Quantity: 1, Price: decimal.NewFromFloat(60.00)},
			{Description: "Placas de vendas impressas", Quantity: 5, Price: decimal.NewFromFloat(45.00)},
			{Description: "Posts para instagram", Quantity: 4, Price: decimal.NewFromFloat(40.00)},
			{Description: "Slides para ppt", Quantity: 3, Price: decimal.NewFromFloat(50.00)},
			{Description: "Padronização de logo", Quantity: 1, Price: decimal.NewFromFloat(90.00)},
		},
		Signature: "Tiago Taurian Design",
	}
}

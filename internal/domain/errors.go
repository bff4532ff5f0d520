package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrUnknownCurrency = errors.New("moeda não suportada")
	ErrRateNotEditable = errors.New("taxa de câmbio não editável na moeda local")
	ErrRateUnavailable = errors.New("cotação indisponível")
)

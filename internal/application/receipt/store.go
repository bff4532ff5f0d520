// Package receipt implementa o estado do editor de recibo: um único
// DocumentData em memória, mutado exclusivamente pelos setters do Store,
// e o sincronizador de moeda que mantém paymentDetails e exchangeRate
// consistentes com a moeda de entrada selecionada.
package receipt

import (
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ttviana/recibo-api/internal/application/dto"
	"github.com/ttviana/recibo-api/internal/application/ports"
	"github.com/ttviana/recibo-api/internal/domain"
	"github.com/ttviana/recibo-api/internal/domain/entity"
	"github.com/ttviana/recibo-api/pkg/logger"
)

// defaultNewService item acrescentado pela operação de adicionar.
func defaultNewService() entity.ServiceItem {
	return entity.ServiceItem{Description: "Novo Serviço", Quantity: 1, Price: decimal.Zero}
}

// Store guarda o documento da sessão. Todas as mutações passam pelo mutex:
// é o análogo do laço de eventos único do editor original, com os handlers
// HTTP no papel dos event handlers.
type Store struct {
	mu          sync.Mutex
	doc         entity.DocumentData
	rateLoading bool
	rateGen     uint64 // geração da busca de cotação; respostas de gerações antigas são descartadas

	rates        ports.RateQuoteService
	fetchTimeout time.Duration
	log          *logger.Logger
}

// NewStore cria o store com o documento padrão e executa a sincronização
// de moeda inicial (equivalente à montagem do editor).
func NewStore(rates ports.RateQuoteService, fetchTimeout time.Duration, log *logger.Logger) *Store {
	s := &Store{
		doc:          entity.DefaultDocument(),
		rates:        rates,
		fetchTimeout: fetchTimeout,
		log:          log,
	}
	_, _, _ = s.SetCurrency(s.doc.Currency)
	return s
}

// Snapshot devolve uma cópia do documento e o estado do indicador de
// carregamento da cotação.
func (s *Store) Snapshot() (entity.DocumentData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), s.rateLoading
}

// UpdateFields aplica um merge raso dos campos presentes no patch.
func (s *Store) UpdateFields(patch dto.UpdateReceiptRequest) (entity.DocumentData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.CompanyName != nil {
		s.doc.CompanyName = *patch.CompanyName
	}
	if patch.ReceiptNumber != nil {
		s.doc.ReceiptNumber = *patch.ReceiptNumber
	}
	if patch.Date != nil {
		s.doc.Date = *patch.Date
	}
	if patch.Client != nil {
		s.doc.Client = *patch.Client
	}
	if patch.BudgetLink != nil {
		s.doc.BudgetLink = *patch.BudgetLink
	}
	if patch.ServiceDetails != nil {
		s.doc.ServiceDetails = *patch.ServiceDetails
	}
	if patch.Signature != nil {
		s.doc.Signature = *patch.Signature
	}
	if patch.SignatureImage != nil {
		s.doc.SignatureImage = *patch.SignatureImage
	}
	return s.doc.Clone(), s.rateLoading
}

// AddService acrescenta um item com os valores padrão ao fim da lista.
func (s *Store) AddService() (entity.DocumentData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Services = append(s.doc.Services, defaultNewService())
	return s.doc.Clone(), s.rateLoading
}

// RemoveService remove o item na posição indicada.
func (s *Store) RemoveService(index int) (entity.DocumentData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.doc.Services) {
		return entity.DocumentData{}, false, domain.ErrNotFound
	}
	s.doc.Services = append(s.doc.Services[:index], s.doc.Services[index+1:]...)
	return s.doc.Clone(), s.rateLoading, nil
}

// UpdateService substitui os campos presentes no patch no item da posição
// indicada. Entrada numérica inválida já chega coerida a zero (dto.Number).
func (s *Store) UpdateService(index int, patch dto.UpdateServiceRequest) (entity.DocumentData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.doc.Services) {
		return entity.DocumentData{}, false, domain.ErrNotFound
	}
	item := s.doc.Services[index]
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Quantity != nil {
		item.Quantity = int(patch.Quantity.Float64())
	}
	if patch.Price != nil {
		item.Price = decimal.NewFromFloat(patch.Price.Float64())
	}
	s.doc.Services[index] = item
	return s.doc.Clone(), s.rateLoading, nil
}

// SetExchangeRate ajusta manualmente a taxa de câmbio. Na moeda local a
// taxa é fixa em 1 e não é editável. Valor não positivo cai para 1.
func (s *Store) SetExchangeRate(v float64) (entity.DocumentData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Currency == entity.LocalCurrency {
		return entity.DocumentData{}, false, domain.ErrRateNotEditable
	}
	rate := decimal.NewFromInt(1)
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		if parsed := decimal.NewFromFloat(v); parsed.IsPositive() {
			rate = parsed
		}
	}
	s.doc.ExchangeRate = rate
	return s.doc.Clone(), s.rateLoading, nil
}

package receipt

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ttviana/recibo-api/internal/domain"
	"github.com/ttviana/recibo-api/internal/domain/entity"
)

// SetCurrency troca a moeda de entrada do documento. O perfil de pagamento
// da nova moeda é mesclado sincronamente sobre os dados atuais em todos os
// ramos (o perfil novo vence nos campos que define; os demais são mantidos);
// a taxa de câmbio é derivada em seguida:
//   - moeda local: taxa fixa em 1, sem chamada de rede;
//   - demais moedas: busca assíncrona do bid atual, com o indicador
//     rateLoading ligado enquanto a busca está pendente.
//
// Em caso de falha da busca (rede, resposta sem o par esperado, timeout) a
// taxa anterior é mantida; a falha é apenas registrada em log.
func (s *Store) SetCurrency(code string) (entity.DocumentData, bool, error) {
	profile, ok := entity.ProfileFor(code)
	if !ok {
		return entity.DocumentData{}, false, domain.ErrUnknownCurrency
	}

	s.mu.Lock()
	s.doc.Currency = code
	s.doc.PaymentDetails = s.doc.PaymentDetails.Merge(profile)
	// Invalida qualquer busca pendente da moeda anterior: a seleção mais
	// recente sempre vence (guarda contra resolução fora de ordem).
	s.rateGen++

	if code == entity.LocalCurrency {
		s.doc.ExchangeRate = decimal.NewFromInt(1)
		s.rateLoading = false
		doc, loading := s.doc.Clone(), s.rateLoading
		s.mu.Unlock()
		return doc, loading, nil
	}

	s.rateLoading = true
	gen := s.rateGen
	doc, loading := s.doc.Clone(), s.rateLoading
	s.mu.Unlock()

	go s.fetchRate(gen, code)
	return doc, loading, nil
}

// fetchRate busca a cotação e aplica o resultado somente se a troca de
// moeda que originou a busca ainda for a vigente. Uma resposta obsoleta é
// descartada por inteiro: não grava taxa nem mexe no indicador de
// carregamento, que já pertence à troca mais recente.
func (s *Store) fetchRate(gen uint64, from string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	bid, err := s.rates.LastBid(ctx, from, entity.LocalCurrency)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.rateGen {
		s.log.Debug().Str("from", from).Msg("cotação obsoleta descartada")
		return
	}

	s.rateLoading = false

	switch {
	case err == nil && bid.IsPositive():
		s.doc.ExchangeRate = bid
		s.log.Info().
			Str("pair", from+entity.LocalCurrency).
			Str("bid", bid.String()).
			Msg("taxa de câmbio atualizada")
	case errors.Is(err, domain.ErrRateUnavailable):
		s.log.Warn().Err(err).Str("from", from).
			Msg("resposta da cotação sem o par esperado; taxa anterior mantida")
	case err != nil:
		s.log.Error().Err(err).Str("from", from).
			Msg("falha ao buscar taxa de câmbio; taxa anterior mantida")
	default:
		s.log.Warn().Str("from", from).Str("bid", bid.String()).
			Msg("cotação não positiva ignorada; taxa anterior mantida")
	}
}

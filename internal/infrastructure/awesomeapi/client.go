// Package awesomeapi implementa o cliente da API pública de cotações
// economia.awesomeapi.com.br (endpoint /json/last/{FROM}-{TO}).
package awesomeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ttviana/recibo-api/internal/application/ports"
	"github.com/ttviana/recibo-api/internal/domain"
)

// Verificação em tempo de compilação de que Client implementa RateQuoteService.
var _ ports.RateQuoteService = (*Client)(nil)

const defaultBaseURL = "https://economia.awesomeapi.com.br"

// Client cliente HTTP da AwesomeAPI. Usa net/http da biblioteca padrão;
// não há SDK oficial.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o cliente. baseURL vazio usa o endpoint público;
// o timeout limita a chamada inteira além do context do chamador.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// lastQuote forma da cotação na resposta da AwesomeAPI. Só o bid interessa;
// vem codificado como string.
type lastQuote struct {
	Bid string `json:"bid"`
}

// LastBid busca o bid atual do par from→to.
// A resposta esperada é um objeto com a chave "{FROM}{TO}" e o campo "bid"
// numérico em string; qualquer outra forma devolve domain.ErrRateUnavailable
// embrulhado para o chamador distinguir de falha de rede.
func (c *Client) LastBid(ctx context.Context, from, to string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/json/last/%s-%s", c.baseURL, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("awesomeapi: criar HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return decimal.Zero, fmt.Errorf("awesomeapi: timeout ou cancelamento: %w", ctx.Err())
		}
		return decimal.Zero, fmt.Errorf("awesomeapi: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return decimal.Zero, fmt.Errorf("awesomeapi: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("awesomeapi: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var payload map[string]lastQuote
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("awesomeapi: resposta não é JSON esperado: %w", domain.ErrRateUnavailable)
	}

	pair := from + to
	quote, ok := payload[pair]
	if !ok {
		return decimal.Zero, fmt.Errorf("awesomeapi: par %s ausente na resposta: %w", pair, domain.ErrRateUnavailable)
	}

	bid, err := decimal.NewFromString(quote.Bid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("awesomeapi: bid %q não numérico: %w", quote.Bid, domain.ErrRateUnavailable)
	}
	return bid, nil
}

package awesomeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttviana/recibo-api/internal/domain"
	"github.com/ttviana/recibo-api/internal/infrastructure/awesomeapi"
)

func TestLastBid_RespostaValida(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/last/USD-BRL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"USDBRL":{"code":"USD","codein":"BRL","bid":"5.4321","ask":"5.4329"}}`))
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	bid, err := client.LastBid(context.Background(), "USD", "BRL")

	require.NoError(t, err)
	assert.True(t, bid.Equal(decimal.RequireFromString("5.4321")),
		"bid esperado 5.4321, obtido %s", bid)
}

// HTTP 200 mas sem a chave do par pedido: indisponibilidade de cotação,
// não falha de rede.
func TestLastBid_ParAusente(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"EURBRL":{"bid":"6.10"}}`))
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	_, err := client.LastBid(context.Background(), "USD", "BRL")

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestLastBid_BidNaoNumerico(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"USDBRL":{"bid":"n/a"}}`))
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	_, err := client.LastBid(context.Background(), "USD", "BRL")

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestLastBid_CorpoNaoJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>manutenção</html>`))
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	_, err := client.LastBid(context.Background(), "USD", "BRL")

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

// Status não-200 é falha de transporte, distinta de ErrRateUnavailable.
func TestLastBid_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	_, err := client.LastBid(context.Background(), "USD", "BRL")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestLastBid_ContextoCancelado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"USDBRL":{"bid":"5.00"}}`))
	}))
	defer server.Close()

	client := awesomeapi.NewClient(server.URL, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.LastBid(ctx, "USD", "BRL")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

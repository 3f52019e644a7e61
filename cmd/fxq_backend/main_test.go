package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, bid string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"USDBRL":{"code":"USD","codein":"BRL","bid":"` + bid + `","timestamp":"1718041200"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	srv := quoteServer(t, "5.1234")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("QUOTE_API_BASE_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCLI(t, "convert", "--amount", "10", "--direction", "brl-to-usd", "--user", "Bob")

	require.NoError(t, err, out)
	var res dto.ConversionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "1.9518", res.ConvertedAmount)
	assert.Equal(t, "BRL", res.From)
	assert.Equal(t, "USD", res.To)
	assert.Equal(t, int64(1), res.TransactionID)
}

func TestConvertCommand_InvalidInput(t *testing.T) {
	srv := quoteServer(t, "5.00")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("QUOTE_API_BASE_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	_, err := runCLI(t, "convert", "--amount", "abc", "--direction", "BRL_TO_USD", "--user", "Bob")
	assert.Error(t, err)

	_, err = runCLI(t, "convert", "--amount", "10", "--direction", "EUR_TO_BRL", "--user", "Bob")
	assert.Error(t, err)

	_, err = runCLI(t, "convert", "--amount=-1", "--direction", "BRL_TO_USD", "--user", "Bob")
	assert.Error(t, err)

	_, err = runCLI(t, "convert", "--amount", "1e2000000", "--direction", "USD_TO_BRL", "--user", "Bob")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRateCommand(t *testing.T) {
	srv := quoteServer(t, "5.1")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("QUOTE_API_BASE_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCLI(t, "rate")

	require.NoError(t, err, out)
	assert.JSONEq(t, `{"pair":"USD-BRL","bid":"5.1000"}`, out)
}

func TestRateCommand_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("QUOTE_API_BASE_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	_, err := runCLI(t, "rate")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrQuoteUnavailable)
}

func TestTransactionsCommand_EmptyStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCLI(t, "transactions")

	require.NoError(t, err, out)
	assert.JSONEq(t, `[]`, out)
}

func TestRootCommand_RejectsBadConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := runCLI(t, "transactions")

	assert.Error(t, err)
}

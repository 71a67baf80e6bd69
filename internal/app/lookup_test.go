package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/domain"
)

func lookupConfig(dictURL string) *config.Config {
	cfg := testConfig("")
	cfg.Explanation.APIKey = ""
	cfg.Dictionary = config.DictionaryConfig{BaseURL: dictURL, Timeout: 5 * time.Second}
	cfg.Lookup = config.LookupConfig{AIFallback: true, RelayTimeout: 5 * time.Second, Temperature: 0.7, MaxTokens: 150}
	return cfg
}

func TestNewLookupService_ThroughRelay(t *testing.T) {
	t.Parallel()

	dict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer dict.Close()

	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"explanation": "A made-up word."})
	}))
	defer relaySrv.Close()

	cfg := lookupConfig(dict.URL)
	cfg.Lookup.RelayURL = relaySrv.URL

	svc, err := NewLookupService(cfg, discardLogger(), true)
	require.NoError(t, err)

	sel, err := domain.NewSelection(1, "florp")
	require.NoError(t, err)

	res := svc.Lookup(context.Background(), sel)
	assert.Equal(t, domain.ResultExplanation, res.Kind)
	assert.Equal(t, domain.SourceAI, res.Source)
	assert.Equal(t, "A made-up word.", res.Text)
}

func TestNewLookupService_NoAI(t *testing.T) {
	t.Parallel()

	dict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer dict.Close()

	svc, err := NewLookupService(lookupConfig(dict.URL), discardLogger(), false)
	require.NoError(t, err)

	sel, err := domain.NewSelection(1, "florp")
	require.NoError(t, err)

	res := svc.Lookup(context.Background(), sel)
	assert.Equal(t, domain.ResultNotFound, res.Kind)
}

func TestNewLookupService_DirectRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewLookupService(lookupConfig("http://unused"), discardLogger(), true)
	require.Error(t, err)
}

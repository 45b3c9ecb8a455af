package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func newTestChef(t *testing.T, baseURL string) *ChefService {
	t.Helper()
	settings := newTestSettings(t)
	chef := NewChefService(settings)
	if baseURL != "" {
		chef.BaseURL = baseURL
	}
	chef.HTTPClient = &http.Client{Timeout: 5 * time.Second}
	return chef
}

func TestSuggestWithoutKeyReturnsSetupHint(t *testing.T) {
	chef := newTestChef(t, "")
	got := chef.Suggest(context.Background(), "I bought salmon")
	assert.Equal(t, fallbackNoKey, got)
}

func TestSuggestReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, geminiModel)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Grill the salmon skin-side down."}]}}]}`))
	}))
	defer srv.Close()

	chef := newTestChef(t, srv.URL)
	assert.NoError(t, chef.Settings.Set(SettingAPIKey, "test-key"))

	got := chef.Suggest(context.Background(), "I bought salmon")
	assert.Equal(t, "Grill the salmon skin-side down.", got)
}

func TestSuggestUpstreamErrorReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	chef := newTestChef(t, srv.URL)
	assert.NoError(t, chef.Settings.Set(SettingAPIKey, "bad-key"))

	got := chef.Suggest(context.Background(), "I bought salmon")
	assert.Equal(t, fallbackError, got)
}

func TestSuggestTransportFailureReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	chef := newTestChef(t, srv.URL)
	assert.NoError(t, chef.Settings.Set(SettingAPIKey, "test-key"))

	got := chef.Suggest(context.Background(), "I bought salmon")
	assert.Equal(t, fallbackError, got)
}

func TestSuggestEmptyCandidatesReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	chef := newTestChef(t, srv.URL)
	assert.NoError(t, chef.Settings.Set(SettingAPIKey, "test-key"))

	got := chef.Suggest(context.Background(), "I bought salmon")
	assert.Equal(t, fallbackEmpty, got)
}

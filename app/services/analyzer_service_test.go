package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeProductByName(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Taladro 20V", payload["name"])

		_ = json.NewEncoder(w).Encode(Analysis{
			Name:          "ignored",
			Category:      "Herramientas",
			Description:   "Taladro inalámbrico de uso rudo.",
			Confidence:    0.42,
			SuggestedTags: []string{"Nuevo"},
		})
	}))
	defer server.Close()

	svc := NewAnalyzerService(server.URL, "test-key")
	result := svc.AnalyzeProductByName(context.Background(), "Taladro 20V")

	assert.Equal(t, "/v1/analyze/name", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Taladro 20V", result.Name, "the caller's name wins over the remote one")
	assert.Equal(t, "Herramientas", result.Category)
	assert.Equal(t, 0.8, result.Confidence, "name analysis pins confidence")
	assert.Equal(t, []string{"Nuevo"}, result.SuggestedTags)
}

func TestAnalyzeImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/analyze/image", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Analysis{Name: "Olla de Acero", Confidence: 0.93})
	}))
	defer server.Close()

	result := NewAnalyzerService(server.URL, "k").AnalyzeImage(context.Background(), "aGVsbG8=")

	assert.Equal(t, "Olla de Acero", result.Name)
	assert.Equal(t, 0.93, result.Confidence)
	assert.Equal(t, "General", result.Category, "missing category defaults")
	assert.NotNil(t, result.SuggestedTags)
}

func TestAnalyzeDegradesOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	result := NewAnalyzerService(server.URL, "k").AnalyzeProductByName(context.Background(), "Olla")

	assert.Equal(t, "Olla", result.Name)
	assert.Equal(t, "General", result.Category)
	assert.Zero(t, result.Confidence)
}

func TestAnalyzeUnconfiguredFallsBack(t *testing.T) {
	result := NewAnalyzerService("", "").AnalyzeImage(context.Background(), "aGVsbG8=")

	assert.Zero(t, result.Confidence)
	assert.Equal(t, "General", result.Category)
	assert.Empty(t, result.SuggestedTags)
}

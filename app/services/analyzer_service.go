package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Analysis is the structured product metadata the analyzer collaborator
// returns for an image or a bare product name.
type Analysis struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Description          string   `json:"description"`
	Confidence           float64  `json:"confidence"`
	SuggestedTags        []string `json:"suggestedTags"`
	EstimatedMarketPrice *float64 `json:"estimatedMarketPrice,omitempty"`
}

// AnalyzerService calls the external analysis API. It is treated as opaque:
// payload in, structured metadata out. Any failure degrades to a safe
// zero-confidence default instead of an error, so callers always get a
// result they can pre-fill a form with.
type AnalyzerService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAnalyzerService(baseURL, apiKey string) *AnalyzerService {
	return &AnalyzerService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func fallbackAnalysis(name string) Analysis {
	return Analysis{
		Name:          name,
		Category:      "General",
		Description:   "Producto pendiente de descripción.",
		Confidence:    0,
		SuggestedTags: []string{},
	}
}

// AnalyzeImage sends a base64-encoded image for identification.
func (s *AnalyzerService) AnalyzeImage(ctx context.Context, base64Image string) Analysis {
	result, err := s.post(ctx, "/v1/analyze/image", map[string]string{"image": base64Image})
	if err != nil {
		log.Printf("AnalyzeImage: analysis failed, using fallback: %v", err)
		return fallbackAnalysis("")
	}
	return *result
}

// AnalyzeProductByName enriches a bare product name. Confidence is fixed at
// 0.8 on success; the remote score is ignored for this cheaper path.
func (s *AnalyzerService) AnalyzeProductByName(ctx context.Context, name string) Analysis {
	result, err := s.post(ctx, "/v1/analyze/name", map[string]string{"name": name})
	if err != nil {
		log.Printf("AnalyzeProductByName: analysis failed for %q, using fallback: %v", name, err)
		return fallbackAnalysis(name)
	}
	result.Name = name
	result.Confidence = 0.8
	return *result
}

func (s *AnalyzerService) post(ctx context.Context, path string, payload any) (*Analysis, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("analyzer not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var result Analysis
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Category == "" {
		result.Category = "General"
	}
	if result.SuggestedTags == nil {
		result.SuggestedTags = []string{}
	}
	return &result, nil
}

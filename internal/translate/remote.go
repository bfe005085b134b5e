package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/translate-service/internal/domain"
)

// models served by the hosted inference API, per direction.
var remoteModels = map[domain.Direction]string{
	domain.DirectionEnToFr: "Helsinki-NLP/opus-mt-en-fr",
	domain.DirectionFrToEn: "Helsinki-NLP/opus-mt-fr-en",
}

// RemoteClient calls a hosted inference API over HTTP.
type RemoteClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewRemoteClient builds a client for the hosted API.
func NewRemoteClient(baseURL, token string, timeout time.Duration) *RemoteClient {
	return &RemoteClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate calls POST /models/{model}. No retry or backoff; transient
// upstream failures surface to the caller.
func (c *RemoteClient) Translate(ctx context.Context, text string, direction domain.Direction) (string, error) {
	model, ok := remoteModels[direction]
	if !ok {
		return "", fmt.Errorf("no remote model for direction %q", direction)
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote backend: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "remote"); err != nil {
		return "", err
	}

	var result []struct {
		TranslationText string `json:"translation_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("remote backend: decode: %w", err)
	}
	if len(result) == 0 {
		return "", fmt.Errorf("remote backend: empty result")
	}
	return result[0].TranslationText, nil
}

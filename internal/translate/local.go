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

// LocalClient calls a colocated model server holding the pretrained
// seq2seq models in memory.
type LocalClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewLocalClient builds a client for the local model server.
func NewLocalClient(baseURL string, timeout time.Duration) *LocalClient {
	return &LocalClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate calls POST /translate on the model server.
func (c *LocalClient) Translate(ctx context.Context, text string, direction domain.Direction) (string, error) {
	body, err := json.Marshal(map[string]string{
		"text":      text,
		"direction": string(direction),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("local backend: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "local"); err != nil {
		return "", err
	}

	var result struct {
		TranslatedText string `json:"translated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("local backend: decode: %w", err)
	}
	return result.TranslatedText, nil
}

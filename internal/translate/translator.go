// Package translate provides clients for the translation backends. Inference
// itself happens out of process; both implementations speak HTTP to a model
// server and differ only in where that server lives.
package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/translate-service/internal/config"
	"github.com/spec-kit/translate-service/internal/domain"
)

// Translator converts text between the supported language pairs.
type Translator interface {
	Translate(ctx context.Context, text string, direction domain.Direction) (string, error)
}

// New selects the backend implementation from configuration.
func New(cfg config.TranslateConfig) (Translator, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return NewLocalClient(cfg.LocalURL, cfg.Timeout()), nil
	case config.BackendRemote:
		return NewRemoteClient(cfg.RemoteURL, cfg.RemoteToken, cfg.Timeout()), nil
	default:
		return nil, fmt.Errorf("unknown translate backend %q", cfg.Backend)
	}
}

// checkResp reads the response body and returns an error if the status is not
// 2xx, including the upstream body for debugging.
func checkResp(resp *http.Response, backend string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s backend returned %d: %s", backend, resp.StatusCode, string(body))
}

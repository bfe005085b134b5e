package translate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/translate"
)

func TestRemoteClientTranslate(t *testing.T) {
	t.Run("sends inputs and bearer token, decodes translation", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode([]map[string]string{{"translation_text": "bonjour"}})
		}))
		defer server.Close()

		client := translate.NewRemoteClient(server.URL, "api-token", 5*time.Second)
		translated, err := client.Translate(context.Background(), "hello", domain.DirectionEnToFr)
		require.NoError(t, err)
		assert.Equal(t, "bonjour", translated)
		assert.Equal(t, "/models/Helsinki-NLP/opus-mt-en-fr", gotPath)
		assert.Equal(t, "Bearer api-token", gotAuth)
		assert.Equal(t, "hello", gotBody["inputs"])
	})

	t.Run("fr_to_en selects the reverse model", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewEncoder(w).Encode([]map[string]string{{"translation_text": "hello"}})
		}))
		defer server.Close()

		client := translate.NewRemoteClient(server.URL, "", 5*time.Second)
		_, err := client.Translate(context.Background(), "bonjour", domain.DirectionFrToEn)
		require.NoError(t, err)
		assert.Equal(t, "/models/Helsinki-NLP/opus-mt-fr-en", gotPath)
	})

	t.Run("non-2xx includes upstream body in the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := translate.NewRemoteClient(server.URL, "", 5*time.Second)
		_, err := client.Translate(context.Background(), "hello", domain.DirectionEnToFr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "model loading")
	})

	t.Run("empty result is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]map[string]string{})
		}))
		defer server.Close()

		client := translate.NewRemoteClient(server.URL, "", 5*time.Second)
		_, err := client.Translate(context.Background(), "hello", domain.DirectionEnToFr)
		assert.Error(t, err)
	})

	t.Run("unknown direction fails before any request", func(t *testing.T) {
		client := translate.NewRemoteClient("http://127.0.0.1:1", "", time.Second)
		_, err := client.Translate(context.Background(), "hello", domain.Direction("en_to_de"))
		assert.Error(t, err)
	})
}

func TestLocalClientTranslate(t *testing.T) {
	t.Run("posts text and direction to the model server", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/translate", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]string{"translated_text": "le chien"})
		}))
		defer server.Close()

		client := translate.NewLocalClient(server.URL, 5*time.Second)
		translated, err := client.Translate(context.Background(), "the dog", domain.DirectionEnToFr)
		require.NoError(t, err)
		assert.Equal(t, "le chien", translated)
		assert.Equal(t, "the dog", gotBody["text"])
		assert.Equal(t, "en_to_fr", gotBody["direction"])
	})

	t.Run("propagates model server errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "out of memory", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := translate.NewLocalClient(server.URL, 5*time.Second)
		_, err := client.Translate(context.Background(), "the dog", domain.DirectionEnToFr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of memory")
	})
}

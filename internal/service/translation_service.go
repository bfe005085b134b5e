package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/events"
	"github.com/spec-kit/translate-service/internal/repository"
	"github.com/spec-kit/translate-service/internal/translate"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

const previewLen = 80

// TranslationCache caches translated text. Misses and cache errors look the
// same to callers; the backend is always the fallback.
type TranslationCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, translated string)
}

// TranslationService runs translations through the configured backend and
// records the audit trail.
type TranslationService struct {
	translator   translate.Translator
	translations repository.TranslationRepository
	cache        TranslationCache
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewTranslationService builds the service.
func NewTranslationService(translator translate.Translator, translations repository.TranslationRepository, cache TranslationCache, dispatcher events.Dispatcher, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translator:   translator,
		translations: translations,
		cache:        cache,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Translate converts text in the given direction. Every successful
// translation, cached or not, is persisted to the audit table before the
// response is returned.
func (s *TranslationService) Translate(ctx context.Context, text string, direction domain.Direction) (*domain.Translation, error) {
	if !direction.Valid() {
		return nil, apperrors.NewValidationError("unsupported translation direction", map[string]any{"direction": string(direction)})
	}

	cacheKey := string(direction) + ":" + text

	translated, cached := s.lookupCache(ctx, cacheKey)
	if !cached {
		var err error
		translated, err = s.translator.Translate(ctx, text, direction)
		if err != nil {
			s.logger.Error("translation backend failed",
				zap.String("direction", string(direction)),
				zap.Error(err))
			return nil, apperrors.NewTranslationFailed(err)
		}
		s.storeCache(ctx, cacheKey, translated)
	}

	record := &domain.Translation{
		Text:           text,
		TranslatedText: translated,
		Direction:      direction,
	}
	if err := s.translations.Create(ctx, record); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	s.publish(ctx, record, cached)
	return record, nil
}

// Recent returns the latest audit entries.
func (s *TranslationService) Recent(ctx context.Context, limit int) ([]domain.Translation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	translations, err := s.translations.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return translations, nil
}

func (s *TranslationService) lookupCache(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	return s.cache.Get(ctx, key)
}

func (s *TranslationService) storeCache(ctx context.Context, key, translated string) {
	if s.cache != nil {
		s.cache.Set(ctx, key, translated)
	}
}

func (s *TranslationService) publish(ctx context.Context, record *domain.Translation, cached bool) {
	if s.dispatcher == nil {
		return
	}
	preview := record.Text
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTranslationCompleted,
		Timestamp: time.Now(),
		Payload: events.TranslationCompletedPayload{
			TranslationID: record.ID,
			Direction:     record.Direction,
			TextPreview:   preview,
			Cached:        cached,
		},
	})
}

package repository

import (
	"context"

	"github.com/spec-kit/translate-service/internal/domain"
)

// TranslationRepository persists the translation audit trail.
type TranslationRepository interface {
	Create(ctx context.Context, translation *domain.Translation) error
	ListRecent(ctx context.Context, limit int) ([]domain.Translation, error)
}

type translationRepository struct {
	pool querier
}

// NewTranslationRepository returns a Postgres-backed implementation.
func NewTranslationRepository(pool querier) TranslationRepository {
	return &translationRepository{pool: pool}
}

func (r *translationRepository) Create(ctx context.Context, translation *domain.Translation) error {
	const query = `
        INSERT INTO translations (text, translated_text, direction)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		translation.Text,
		translation.TranslatedText,
		translation.Direction,
	).Scan(&translation.ID, &translation.CreatedAt)
}

func (r *translationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Translation, error) {
	const query = `
        SELECT id, text, translated_text, direction, created_at
        FROM translations ORDER BY id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []domain.Translation
	for rows.Next() {
		var t domain.Translation
		if err := rows.Scan(&t.ID, &t.Text, &t.TranslatedText, &t.Direction, &t.CreatedAt); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, rows.Err()
}

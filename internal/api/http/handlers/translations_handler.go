package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/translate-service/internal/api/dto"
	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/service"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

// TranslationsHandler exposes the translation endpoints.
type TranslationsHandler struct {
	translations *service.TranslationService
}

// NewTranslationsHandler constructs handler.
func NewTranslationsHandler(translationService *service.TranslationService) *TranslationsHandler {
	return &TranslationsHandler{translations: translationService}
}

// EnToFr handles POST /en_to_fr.
func (h *TranslationsHandler) EnToFr(c *fiber.Ctx) error {
	return h.translate(c, domain.DirectionEnToFr)
}

// FrToEn handles POST /fr_to_en.
func (h *TranslationsHandler) FrToEn(c *fiber.Ctx) error {
	return h.translate(c, domain.DirectionFrToEn)
}

func (h *TranslationsHandler) translate(c *fiber.Ctx, direction domain.Direction) error {
	var req dto.TranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperrors.NewValidationError("text is required", nil)
	}

	record, err := h.translations.Translate(c.Context(), req.Text, direction)
	if err != nil {
		return err
	}

	return c.JSON(dto.TranslationResponse{
		Original:       record.Text,
		TranslatedText: record.TranslatedText,
	})
}

// Recent handles GET /translations for the audit trail.
func (h *TranslationsHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	translations, err := h.translations.Recent(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"translations": translations})
}

package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/translate-service/pkg/util"
)

func TestToDomainError(t *testing.T) {
	t.Run("passes through domain errors", func(t *testing.T) {
		err := util.NewUserExists()
		domainErr := util.ToDomainError(err)
		assert.Equal(t, "USER_EXISTS", domainErr.Code)
		assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
		assert.Equal(t, "User already exist", domainErr.Message)
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		domainErr := util.ToDomainError(errors.New("boom"))
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
		assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, util.ToDomainError(nil))
	})

	t.Run("store unavailable keeps the cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := util.NewStoreUnavailable(cause)
		domainErr := util.ToDomainError(err)
		assert.Equal(t, http.StatusServiceUnavailable, domainErr.HTTPStatus)
		require.ErrorIs(t, domainErr, cause)
	})

	t.Run("translation failed maps to bad gateway", func(t *testing.T) {
		domainErr := util.ToDomainError(util.NewTranslationFailed(errors.New("model down")))
		assert.Equal(t, "TRANSLATION_FAILED", domainErr.Code)
		assert.Equal(t, http.StatusBadGateway, domainErr.HTTPStatus)
	})
}

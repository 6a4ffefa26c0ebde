package helper

import (
	"errors"
	"net/http"
	"testing"

	"neighborhood-stories/models"

	"github.com/stretchr/testify/assert"
)

func TestGetStatusCode(t *testing.T) {
	u := &HTTPHelper{}

	assert.Equal(t, http.StatusOK, u.GetStatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, u.GetStatusCode(models.ErrorValidation{Message: "bad"}))
	assert.Equal(t, http.StatusUnauthorized, u.GetStatusCode(models.ErrorUnauthorized{}))
	assert.Equal(t, http.StatusNotFound, u.GetStatusCode(models.ErrorNotFound{Message: "missing"}))
	assert.Equal(t, http.StatusConflict, u.GetStatusCode(models.ErrorInvalidTransition{From: models.StatusArchived, Action: "approve"}))
	assert.Equal(t, http.StatusInternalServerError, u.GetStatusCode(models.ErrorInternalServer{Message: "boom"}))
	assert.Equal(t, http.StatusInternalServerError, u.GetStatusCode(errors.New("anything else")))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "translator_language", Underscore("TranslatorLanguage"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "", Underscore(""))
}

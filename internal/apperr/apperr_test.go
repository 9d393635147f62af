package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("empty cart")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("no such hold")))
	assert.Equal(t, KindPolicy, KindOf(Policy("short $12.00")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already recalled")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFound("held transaction gone")
	wrapped := fmt.Errorf("recall failed: %w", inner)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindInternal, cause, "saving hold")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "saving hold")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("gone")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(Policy("no")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("race")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := NewProvider("GHL API error: status=502", "bad gateway")
	assert.Equal(t, "provider_error: GHL API error: status=502 (bad gateway)", err.Error())

	plain := NewSession("Token expired, please re-authenticate")
	assert.Equal(t, "session_error: Token expired, please re-authenticate", plain.Error())
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("while saving: %w", NewPrecondition("review link not configured"))

	assert.True(t, Is(err, KindPrecondition))
	assert.False(t, Is(err, KindNotFound))
	assert.False(t, Is(errors.New("plain"), KindPrecondition))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("missing")))
	assert.Equal(t, KindValidation, KindOf(NewValidation("bad", "")))
	// unclassified errors come from provider calls
	assert.Equal(t, KindProvider, KindOf(errors.New("connection reset")))
}

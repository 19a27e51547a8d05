package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beholdr/grimoire/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "beast not found")
	require.NotNil(t, err)
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "beast not found", err.Message)
	assert.Equal(t, "NOT_FOUND: beast not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.NotFoundf("beast %q (%s) not found", "Orc", "MM")
	assert.Equal(t, `NOT_FOUND: beast "Orc" (MM) not found`, err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("spell not found")
	wrapped := errors.Wrap(inner, "failed to load spellbook entry")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapDefaultsToInternal(t *testing.T) {
	inner := stderrors.New("disk full")
	wrapped := errors.Wrap(inner, "failed to store record")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "disk full")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "no-op"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeDataLoss, "no-op"))
}

func TestWrapWithCode(t *testing.T) {
	inner := stderrors.New("unreadable file")
	wrapped := errors.WrapWithCode(inner, errors.CodeDataLoss, "index corrupt")

	assert.Equal(t, errors.CodeDataLoss, wrapped.Code)
	assert.True(t, errors.IsDataLoss(wrapped))
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("beast not found").
		WithMeta("name", "orc").
		WithMeta("source", "mm")

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, "orc", meta["name"])
	assert.Equal(t, "mm", meta["source"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeFailedPrecondition,
		errors.GetCode(errors.FailedPrecondition("reference cycle detected")))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.NotFound("missing"))
	assert.True(t, errors.IsNotFound(err))
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.NotFound("first")
	b := errors.NotFound("second")
	assert.True(t, errors.Is(a, b))

	c := errors.Internal("boom")
	assert.False(t, errors.Is(a, c))
}

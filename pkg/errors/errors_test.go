package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigInvalidShape, "icon entry has unexpected shape")
	assert.Equal(t, ErrConfigInvalidShape, err.Code)
	assert.Equal(t, "[CONFIG_INVALID_SHAPE] icon entry has unexpected shape", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("open icons.yaml: no such file or directory")
	err := Wrap(inner, ErrConfigSourceNotFound, "cannot read icon configuration")

	require.NotNil(t, err)
	assert.Equal(t, ErrConfigSourceNotFound, err.Code)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "no such file")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should %s", "vanish"))
}

func TestIsMatchesOnCode(t *testing.T) {
	a := New(ErrComponentNotFound, "component .fooActivity not declared")
	b := New(ErrComponentNotFound, "different message")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, New(ErrNoContext, "no device attached")))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(ErrManifestMissingAnchor, "no </application> element")
	wrapped := fmt.Errorf("reconcile: %w", base)

	assert.True(t, IsCode(wrapped, ErrManifestMissingAnchor))
	assert.Equal(t, ErrManifestMissingAnchor, GetCode(wrapped))
	assert.Equal(t, ErrUnknown, GetCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrConfigMissingField, "long form entry missing path").
		WithDetail("identifier", "christmas").
		WithDetail("field", "path")

	assert.Equal(t, "christmas", err.Details["identifier"])
	assert.Equal(t, "path", err.Details["field"])
}

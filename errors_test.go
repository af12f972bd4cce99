package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "Engine.Search", Kind: KindValidation}
	assert.Equal(t, "engine: Engine.Search: validation", err.Error())

	err = NewValidationError("Engine.Search", ErrInvalidCriteria)
	assert.Equal(t, "engine: Engine.Search (validation): invalid search criteria", err.Error())

	withCtx := err.WithContext(map[string]any{"zoom": 3})
	assert.Contains(t, withCtx.Error(), "zoom:3")

	// WithContext does not mutate the original.
	assert.Nil(t, err.Context)
}

func TestErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("wrapped: %w", ErrEntityNotFound)
	err := NewNotFoundError("Engine.Entity", inner)

	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, inner, errors.Unwrap(err))

	var engErr *Error
	require.True(t, errors.As(error(err), &engErr))
	assert.Equal(t, KindNotFound, engErr.Kind)
}

func TestErrorIsByKind(t *testing.T) {
	err := NewConfigurationError("Engine.New", ErrInvalidConfig)

	// Kind alone matches.
	assert.ErrorIs(t, err, &Error{Kind: KindConfiguration})

	// Kind plus Op must both match when Op is set on the target.
	assert.ErrorIs(t, err, &Error{Op: "Engine.New", Kind: KindConfiguration})
	assert.NotErrorIs(t, err, &Error{Op: "Engine.Search", Kind: KindConfiguration})
	assert.NotErrorIs(t, err, &Error{Kind: KindInternal})
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("boom")
	for _, tc := range []struct {
		err  *Error
		kind string
	}{
		{NewNotFoundError("op", cause), KindNotFound},
		{NewValidationError("op", cause), KindValidation},
		{NewConfigurationError("op", cause), KindConfiguration},
		{NewInternalError("op", cause), KindInternal},
	} {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.ErrorIs(t, tc.err, cause)
	}
}

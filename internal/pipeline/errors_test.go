package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	input := NewInputError("annotate", "empty image payload")
	noText := NewNoTextError("annotate")
	upstream := NewUpstreamError("format", errors.New("rate limited"))

	assert.True(t, IsInput(input))
	assert.False(t, IsInput(noText))
	assert.True(t, IsNoText(noText))
	assert.False(t, IsNoText(upstream))

	assert.Equal(t, KindInput, KindOf(input))
	assert.Equal(t, KindNoText, KindOf(noText))
	assert.Equal(t, KindUpstream, KindOf(upstream))
}

func TestKindOf_PlainErrorDefaultsToUpstream(t *testing.T) {
	assert.Equal(t, KindUpstream, KindOf(errors.New("something broke")))
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	inner := NewInputError("format", "no text provided for formatting")
	wrapped := fmt.Errorf("pipeline stage failed: %w", inner)

	assert.True(t, IsInput(wrapped))
	assert.Equal(t, KindInput, KindOf(wrapped))
}

func TestUpstreamErrorKeepsProviderMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError("annotate", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "annotate")
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", newError(KindGenerationFailed, "op", "msg", cause))

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNoImageInResponse)
	assert.NotErrorIs(t, err, ErrAnalysisFailed)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindGenerationFailed, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	err := newError(KindInvalidAttachment, "generator.Generate", "添付画像を解決できません", context.Canceled)
	assert.Equal(t, "generator.Generate: INVALID_ATTACHMENT: 添付画像を解決できません: context canceled", err.Error())
	assert.Equal(t, "NO_IMAGE_IN_RESPONSE", (&Error{Kind: KindNoImageInResponse}).Error())
}

func TestIsGenerationFailure(t *testing.T) {
	assert.True(t, IsGenerationFailure(newError(KindGenerationFailed, "", "", nil)))
	assert.True(t, IsGenerationFailure(newError(KindNoImageInResponse, "", "", nil)))
	assert.False(t, IsGenerationFailure(newError(KindInvalidAttachment, "", "", nil)))
	assert.False(t, IsGenerationFailure(newError(KindAnalysisFailed, "", "", nil)))
	assert.False(t, IsGenerationFailure(nil))
}

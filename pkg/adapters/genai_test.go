package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenAIModels(t *testing.T) {
	t.Run("APIキーは必須", func(t *testing.T) {
		_, err := NewGenAIModels(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("APIキーからModelsを作る", func(t *testing.T) {
		models, err := NewGenAIModels(context.Background(), "test-api-key")
		require.NoError(t, err)
		assert.NotNil(t, models)
	})
}

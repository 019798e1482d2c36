package adapters

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-livery-kit/pkg/generator"
	"google.golang.org/genai"
)

var _ generator.ContentGenerator = (*genai.Models)(nil)

// NewGenAIModels は APIキーから Gemini API バックエンドの genai クライアントを作り、その Models を返します。
// 返り値はそのまま generator.ContentGenerator として使えます。
func NewGenAIModels(ctx context.Context, apiKey string) (*genai.Models, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの初期化に失敗しました: %w", err)
	}
	return client.Models, nil
}

package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-livery-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

var _ generator.ContentGenerator = (*GeminiClientAdapter)(nil)

// GeminiClientAdapter は gemini.GenerativeModel を generator.ContentGenerator として使うためのアダプターです。
// gemini.GenerateOptions にはサイズ区分の項目がないため、ImageSize は反映されません。
// 固定のサイズ区分が必要な場合は NewGenAIModels の *genai.Models を使ってください。
type GeminiClientAdapter struct {
	aiClient gemini.GenerativeModel
}

// NewGeminiClientAdapter は通信クライアントを注入して初期化します。
func NewGeminiClientAdapter(aiClient gemini.GenerativeModel) (*GeminiClientAdapter, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (gemini.GenerativeModel) is required")
	}
	return &GeminiClientAdapter{aiClient: aiClient}, nil
}

// GenerateContent は各 Content のパーツを順に連結し、アスペクト比とともに GenerateWithParts へ渡します。
// ImageSize が指定されていても転送できないため、警告ログを出してクライアント側の既定値で生成します。
func (a *GeminiClientAdapter) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var parts []*genai.Part
	for _, c := range contents {
		if c == nil {
			continue
		}
		parts = append(parts, c.Parts...)
	}

	var opts gemini.GenerateOptions
	if config != nil && config.ImageConfig != nil {
		opts.AspectRatio = config.ImageConfig.AspectRatio
		if config.ImageConfig.ImageSize != "" {
			slog.WarnContext(ctx, "ImageSize はこのクライアントでは指定できないため無視します", "image_size", config.ImageConfig.ImageSize)
		}
	}

	resp, err := a.aiClient.GenerateWithParts(ctx, model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini生成エラー: %w", err)
	}
	if resp == nil || resp.RawResponse == nil {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}
	return resp.RawResponse, nil
}

package generator

import (
	"context"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"google.golang.org/genai"
)

// ContentGenerator は生成APIへの1往復を表します。(*genai.Models).GenerateContent と同じシグネチャです。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageResolver は ImageSource を画像のバイト列に解決します。
type ImageResolver interface {
	Load(ctx context.Context, src domain.ImageSource) ([]byte, error)
}

package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/gemini-livery-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// ImageOutput はレスポンスから取り出した画像です。
type ImageOutput struct {
	Data     []byte
	MimeType string
}

// buildParts はプロンプト本文を先頭に、添付画像をコンパイラの順序どおりに並べます。
func (g *Generator) buildParts(ctx context.Context, compiled domain.CompiledPrompt) ([]*genai.Part, error) {
	parts := make([]*genai.Part, 0, len(compiled.Attachments)+1)
	parts = append(parts, &genai.Part{Text: compiled.Text})

	for _, a := range compiled.Attachments {
		data, err := g.loader.Load(ctx, a.Image)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Role, err)
		}
		parts = append(parts, toPart(ctx, string(a.Role), data))
	}
	return parts, nil
}

// toPart は画像を PNG に正規化してインラインパーツにします。
// デコードできない画像はそのまま PNG として送信します。
func toPart(ctx context.Context, label string, data []byte) *genai.Part {
	normalized, err := imgutil.NormalizePNG(data)
	if err != nil {
		slog.WarnContext(ctx, "画像をPNGに正規化できないため元データを送信します", "role", label, "error", err)
		normalized = data
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: imgutil.PNGMimeType, Data: normalized}}
}

// parseToResponse は最初の候補から最初のインライン画像を取り出します。
func parseToResponse(resp *genai.GenerateContentResponse) (*ImageOutput, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("レスポンスに候補がありません")
	}
	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = imgutil.PNGMimeType
				}
				return &ImageOutput{Data: part.InlineData.Data, MimeType: mimeType}, nil
			}
		}
	}

	if candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像データがありません (finish_reason=%s)", candidate.FinishReason)
	}
	return nil, fmt.Errorf("画像データがありません")
}

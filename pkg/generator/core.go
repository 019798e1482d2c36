package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/gemini-livery-kit/pkg/aspect"
	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/gemini-livery-kit/pkg/imgutil"
	"github.com/shouni/gemini-livery-kit/pkg/prompt"
	"google.golang.org/genai"
)

// Generator はデザインリクエストから画像を1枚生成するオーケストレーターです。
// 保持するのは不変の設定だけなので、複数の goroutine から同時に呼び出せます。
type Generator struct {
	transport ContentGenerator
	loader    ImageResolver
	model     string
	imageSize string
	timeout   time.Duration
}

// Option は Generator の設定を変更します。
type Option func(*Generator)

// WithModel は生成に使うモデルを指定します。空文字列は無視されます。
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithImageSize は出力画像のサイズ区分 ("1K" 等) を指定します。空文字列は無視されます。
func WithImageSize(size string) Option {
	return func(g *Generator) {
		if size != "" {
			g.imageSize = size
		}
	}
}

// WithTimeout は1回の呼び出しの期限を指定します。0 以下の場合は期限を設けません。
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator は依存関係を注入して Generator を初期化します。
// loader が nil の場合はデータURIのみを解決するローダーを使います。
func NewGenerator(transport ContentGenerator, loader ImageResolver, opts ...Option) (*Generator, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport (ContentGenerator) is required")
	}
	if loader == nil {
		loader = NewImageLoader(nil, nil, false)
	}

	g := &Generator{
		transport: transport,
		loader:    loader,
		model:     DefaultImageModel,
		imageSize: DefaultImageSize,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate はリクエストをコンパイルして画像を生成します。
func (g *Generator) Generate(ctx context.Context, req domain.DesignRequest) (*domain.GenerationResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", domain.ErrInvalidRequest)
	}
	compiled := prompt.Compile(req)
	return g.GenerateCompiled(ctx, compiled, domain.Normalize(req).Aspect())
}

// GenerateCompiled はコンパイル済みのプロンプトから画像を生成します。
// 編集したスタイルDNAで再生成する場合など、コンパイラを通さない経路で使います。
func (g *Generator) GenerateCompiled(ctx context.Context, compiled domain.CompiledPrompt, ratio domain.AspectRatio) (*domain.GenerationResult, error) {
	const op = "generator.Generate"

	parts, err := g.buildParts(ctx, compiled)
	if err != nil {
		slog.WarnContext(ctx, "添付画像の解決に失敗しました", "state", StateFailed, "error", err)
		return nil, newError(KindInvalidAttachment, op, "添付画像を解決できません", err)
	}

	resolved := aspect.Resolve(ratio)
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: string(resolved),
			ImageSize:   g.imageSize,
		},
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}
	slog.DebugContext(ctx, "生成リクエストを構築しました",
		"state", StateBuilt, "model", g.model, "ref_count", len(parts)-1, "aspect_ratio", resolved, "image_size", g.imageSize)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "Gemini画像生成リクエスト送信", "state", StateDispatched, "model", g.model, "ref_count", len(parts)-1)
	resp, err := g.transport.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		slog.ErrorContext(ctx, "Gemini画像生成に失敗しました", "state", StateFailed, "model", g.model, "error", err)
		return nil, newError(KindGenerationFailed, op, "画像生成APIの呼び出しに失敗しました", err)
	}

	out, err := parseToResponse(resp)
	if err != nil {
		slog.WarnContext(ctx, "レスポンスに画像がありません", "state", StateFailed, "model", g.model, "error", err)
		return nil, newError(KindNoImageInResponse, op, err.Error(), nil)
	}

	slog.InfoContext(ctx, "Gemini画像生成完了", "state", StateFulfilled, "model", g.model, "mime_type", out.MimeType, "bytes", len(out.Data))
	return &domain.GenerationResult{
		ImageURL:   imgutil.EncodeDataURI(out.MimeType, out.Data),
		PromptText: compiled.Text,
	}, nil
}

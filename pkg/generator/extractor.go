package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"google.golang.org/genai"
)

const styleAnalysisInstruction = "Analyze the artistic DNA of this motorsport poster or art piece. " +
	"Describe its visual technique (e.g., flat vector, oil painting, cinematic CGI, vintage illustration), lighting style, composition logic, brushwork, and overall atmospheric mood. " +
	"Focus only on the STYLE, not the specific car model. Keep it concise (under 100 words) so it can be used as a prompt. " +
	"IMPORTANT: Provide the response in %s."

var analysisLanguages = map[string]string{
	"en": "English",
	"zh": "Chinese",
	"ja": "Japanese",
}

// LanguageName は言語コードを指示文用の言語名にします。未知のコードは英語になります。
func LanguageName(code string) string {
	if name, ok := analysisLanguages[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return analysisLanguages["en"]
}

// StyleExtractor は参照画像から画風の特徴（スタイルDNA）を短い文章として抽出します。
type StyleExtractor struct {
	transport ContentGenerator
	loader    ImageResolver
	model     string
	timeout   time.Duration
}

// NewStyleExtractor は StyleExtractor を初期化します。model が空の場合は DefaultAnalysisModel を使います。
func NewStyleExtractor(transport ContentGenerator, loader ImageResolver, model string, timeout time.Duration) (*StyleExtractor, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport (ContentGenerator) is required")
	}
	if loader == nil {
		loader = NewImageLoader(nil, nil, false)
	}
	if model == "" {
		model = DefaultAnalysisModel
	}
	return &StyleExtractor{transport: transport, loader: loader, model: model, timeout: timeout}, nil
}

// Extract は画像を解析してスタイルの説明文を返します。応答にテキストがなければ空文字列です。
func (e *StyleExtractor) Extract(ctx context.Context, image domain.ImageSource, language string) (string, error) {
	const op = "generator.ExtractStyle"

	data, err := e.loader.Load(ctx, image)
	if err != nil {
		return "", newError(KindInvalidAttachment, op, "スタイル参照画像を解決できません", err)
	}

	parts := []*genai.Part{
		{Text: fmt.Sprintf(styleAnalysisInstruction, LanguageName(language))},
		toPart(ctx, string(domain.RoleStyleReference), data),
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "スタイルDNA解析リクエスト送信", "model", e.model, "language", LanguageName(language))
	resp, err := e.transport.GenerateContent(ctx, e.model, []*genai.Content{{Role: "user", Parts: parts}}, nil)
	if err != nil {
		slog.ErrorContext(ctx, "スタイルDNA解析に失敗しました", "model", e.model, "error", err)
		return "", newError(KindAnalysisFailed, op, "スタイル解析APIの呼び出しに失敗しました", err)
	}
	return responseText(resp), nil
}

// responseText は最初の候補から思考パーツ以外のテキストを連結します。候補やパーツが欠けていれば空文字列です。
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}

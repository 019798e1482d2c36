// Package prompt はデザインリクエストを画像生成用のプロンプト本文と添付画像の並びに変換します。
//
// Compile は純粋関数です。ネットワークにも共有状態にも触れないため、並行に何度呼び出しても同じ結果を返します。
package prompt

import (
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

// ConstraintClause はすべてのプロンプトの末尾にそのまま付与される制約文です。
const ConstraintClause = "STRICT: NO TEXT, NO TITLES, NO SLOGANS. The generated image MUST NOT contain any words, fonts, titles, or slogans other than the provided brand logos.\n" +
	"STRICT FRAMING: The entire subject must be fully visible and contained within the frame. No clipping."

// Compile はリクエストの種別ごとにサブコンパイラへ振り分けます。
// 未知の型や nil を渡してもエラーにはせず、制約文だけのプロンプトを返します。
func Compile(req domain.DesignRequest) domain.CompiledPrompt {
	switch r := domain.Normalize(req).(type) {
	case domain.SceneRequest:
		return compileScene(r)
	case domain.ArtRequest:
		return compileArt(r)
	case domain.MerchRequest:
		return compileMerch(r)
	default:
		return domain.CompiledPrompt{Text: assemble(ConstraintClause)}
	}
}

// assemble は空でないセクションを改行で連結し、最後に制約文が来ることを保証します。
func assemble(sections ...string) string {
	out := make([]string, 0, len(sections)+1)
	for _, s := range sections {
		s = strings.TrimSpace(s)
		if s == "" || s == ConstraintClause {
			continue
		}
		out = append(out, s)
	}
	out = append(out, ConstraintClause)
	return strings.Join(out, "\n")
}

// collect は存在する画像だけを宣言順に残します。欠落した画像はプレースホルダーにせず除外します。
func collect(candidates ...domain.Attachment) []domain.Attachment {
	var out []domain.Attachment
	for _, a := range candidates {
		if a.Image.IsZero() {
			continue
		}
		out = append(out, a)
	}
	return out
}

// lines は空行を除いて改行で連結します。
func lines(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

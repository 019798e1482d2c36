package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

// ColorSourceRule はスタイルDNA複製で色と技法の出所を固定する規則です。
// 色は車両画像のリバリーから、技法と構図はスタイル参照から取り、逆にしてはいけません。
const ColorSourceRule = "COLOR LOGIC (MANDATORY): Derive the color palette from the \"Car Image\". Extract its specific livery colors (the brand colors). " +
	"The background, environment, and artistic effects MUST use the colors extracted from the CAR LIVERY to ensure brand harmony. " +
	"Do NOT take any colors from the \"Style Reference Image\".\n" +
	"TECHNIQUE LOGIC (MANDATORY): Take only the artistic technique, brushwork, lighting style, and composition from the style reference DNA."

// liveryInstruction はパターン参照画像をリバリーの文章メモより優先させます。
// パターン参照がない場合のみ文章メモがリバリーの主たる指示になります。
// 車両参照画像がある場合はモデル名を使わず、画像の車両として指します。
func liveryInstruction(r domain.SceneRequest) string {
	notes := strings.TrimSpace(r.LiveryNotes)
	if !r.PatternRef.IsZero() {
		target := "car"
		if r.PrimaryCarRef.IsZero() {
			target = carName(r.PrimaryModel)
		}
		s := fmt.Sprintf("LIVERY (TOP PRIORITY): Analyze the provided \"Pattern Reference\" image. You MUST extract its exact color palette, graphic motifs, and design DNA "+
			"and map this specific design precisely onto the aerodynamic body of the %s. The Pattern Reference overrides any written livery notes.", target)
		if notes != "" {
			s += fmt.Sprintf(" Use these notes only as secondary guidance: %s.", notes)
		}
		return s
	}
	if notes != "" {
		return fmt.Sprintf("LIVERY: %s. Ensure all brand colors and aerodynamic details are sharp.", notes)
	}
	return "LIVERY: A clean, professional racing livery. Ensure all brand colors and aerodynamic details are sharp."
}

// designSource はグッズのデザイン元を決めます。パターン参照が車両リバリーより優先されます。
func designSource(r domain.MerchRequest) string {
	switch {
	case !r.PatternRef.IsZero():
		return "the design motifs, graphic DNA, and color palette of the provided \"Pattern Reference\""
	case !r.CarRef.IsZero():
		return "the livery design DNA and colors of the provided \"Car Reference\""
	default:
		return "a cohesive, high-contrast motorsport team color palette"
	}
}

// carName はモデル名からプロンプト用の車両表現を作ります。
func carName(model string) string {
	if model = strings.TrimSpace(model); model != "" {
		return "high-performance " + model + " racing car"
	}
	return "high-performance racing car"
}

const (
	sponsorLogoName = "**Sponsor Logo**"
	teamLogoName    = "**Team Logo**"
	eventLogoName   = "**Event Logo**"
)

// logoNames は存在するロゴの名前を "A", "A and B", "A, B and C" の形に連結します。
func logoNames(present map[string]bool, order ...string) string {
	var names []string
	for _, name := range order {
		if present[name] {
			names = append(names, name)
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

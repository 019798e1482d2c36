package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

const (
	merchPreamble = "(Professional Motorsport Merchandise Product Photography, 8k resolution, Masterpiece)."
	merchPhysical = "STRICT: The asset must look like a real, physical product."

	defaultApparelColor    = "Pure Black"
	defaultCollectionColor = "Black"
	defaultApparelStyle    = "Cinematic motorsport illustration with vibrant glows and dynamic lighting"
)

// merchItems はグッズ種別ごとのテンプレートです。
var merchItems = map[domain.MerchItem]func(domain.MerchRequest) string{
	domain.ItemScaleModel: scaleModel,
	domain.ItemBeverage:   beverage,
	domain.ItemApparel:    apparel,
	domain.ItemCollection: collection,
}

func compileMerch(r domain.MerchRequest) domain.CompiledPrompt {
	item, ok := merchItems[r.Item]
	if !ok {
		item = genericMerch
	}
	return domain.CompiledPrompt{
		Text: assemble(merchPreamble, item(r), merchPhysical),
		Attachments: collect(
			domain.Attachment{Role: domain.RolePrimaryCar, Image: r.CarRef},
			domain.Attachment{Role: domain.RolePattern, Image: r.PatternRef},
			domain.Attachment{Role: domain.RoleSponsorLogo, Image: r.SponsorLogo},
			domain.Attachment{Role: domain.RoleTeamLogo, Image: r.TeamLogo},
		),
	}
}

func merchLogos(r domain.MerchRequest) string {
	present := map[string]bool{teamLogoName: !r.TeamLogo.IsZero(), sponsorLogoName: !r.SponsorLogo.IsZero()}
	return logoNames(present, teamLogoName, sponsorLogoName)
}

func scaleModel(r domain.MerchRequest) string {
	var box string
	if logos := merchLogos(r); logos != "" {
		box = "BRANDING ON BOX: The provided " + logos + " must be clearly printed as high-quality graphic branding elements on the packaging box's surfaces."
	}
	return lines(
		"CONCEPT: High-end collectible 1/18 scale diecast racing model figurine.",
		"VISUAL STYLE: Minimalist, clean, pure professional white studio background.",
		"SUBJECT: A 1/18 scale miniature model of the provided car, featuring its exact livery and decals.",
		"PACKAGING: A premium collectible display box is included in the scene, positioned behind or next to the model car.",
		box,
		"LIGHTING: Cinematic high-end studio product photography lighting.",
	)
}

func beverage(r domain.MerchRequest) string {
	var logos string
	if names := merchLogos(r); names != "" {
		logos = "- The labels MUST integrate the provided " + names + "."
	}
	return lines(
		"CONCEPT: High-end professional product shot of racing-branded takeaway coffee.",
		"SCENE: Two premium coffee cups positioned on a minimalist, pure white studio background.",
		"SUBJECTS:",
		"1. One transparent plastic takeaway cup containing an Iced Americano with clear visible ice cubes.",
		"2. One premium matte-finish paper cup for a hot Latte.",
		"BRANDING: Both cups feature a custom-designed wrap-around graphic label or sleeve.",
		"LABEL DESIGN LOGIC:",
		logos,
		"- The graphic background design and color palette of the labels MUST be precisely derived from "+designSource(r)+".",
		"LIGHTING: Bright, clean, high-end studio product photography lighting with soft reflections on the plastic cup.",
	)
}

func apparel(r domain.MerchRequest) string {
	front := []string{"FRONT DESIGN:", "- Small, professional-grade logo placement on the chest. Visual style: minimalist and clean."}
	if !r.TeamLogo.IsZero() {
		front = append(front, "- The "+teamLogoName+" must be placed on the LEFT CHEST.")
	}
	if !r.SponsorLogo.IsZero() {
		front = append(front, "- The "+sponsorLogoName+" must be placed on the RIGHT CHEST.")
	}

	back := []string{
		"BACK DESIGN:",
		"- A large, high-impact central graphic centered on the back.",
		"- The car from the \"Car Reference\" image must be the primary subject of this graphic.",
	}
	if !r.TeamLogo.IsZero() {
		back = append(back, "- BACKGROUND OF THE GRAPHIC: The "+teamLogoName+" appears as a large, stylized backdrop directly BEHIND the car graphic.")
	}
	back = append(back, "- ARTISTIC STYLE: "+orDefault(r.StyleDescription, defaultApparelStyle)+".")
	if !r.PatternRef.IsZero() {
		back = append(back, "- Incorporate graphic motifs and color DNA from the provided \"Pattern Reference\" into the background of this back graphic.")
	}

	return lines(
		"CONCEPT: Professional high-end racing team apparel merchandise mockup.",
		"LAYOUT: A side-by-side presentation showing both the FRONT and BACK of a premium T-shirt in one frame.",
		"BASE COLOR: The T-shirt must be the color: "+orDefault(r.BaseColor, defaultApparelColor)+".",
		lines(front...),
		lines(back...),
		"VISUAL STYLE: Photorealistic product photography on a minimalist neutral studio background.",
	)
}

func collection(r domain.MerchRequest) string {
	var branding string
	if logos := merchLogos(r); logos != "" {
		branding = "BRANDING: Integrate the provided " + logos + " prominently and professionally on every item in the collection."
	}
	return lines(
		"CONCEPT: A professional high-end motorsport brand merchandise collection catalog sheet.",
		"LAYOUT: Organized product lineup on a clean white background with subtle graphic accents such as dots or geometric shadows.",
		"PRODUCTS TO INCLUDE IN THE LINEUP:",
		"1. 1/18 SCALE MODEL: A precision model car with its branded display box.",
		"2. APPAREL: A high-end T-shirt and a team hoodie displayed flat or on invisible mannequins, produced in the base color: "+orDefault(r.BaseColor, defaultCollectionColor)+".",
		"3. ACCESSORIES: A branded tote bag, a set of graphic keychains, and a circular hand fan.",
		"4. LIFESTYLE: An insulated stainless steel bottle or coffee mug.",
		"DESIGN DNA (TOP PRIORITY): All products MUST share a unified design theme derived from "+designSource(r)+", applied cohesively across every product surface.",
		branding,
		"VISUAL STYLE: Clean, bright, high-fidelity studio product photography.",
	)
}

// genericMerch は未知のグッズ種別に対する汎用テンプレートです。存在する任意項目だけを使います。
func genericMerch(r domain.MerchRequest) string {
	item := strings.TrimSpace(string(r.Item))
	if item == "" {
		item = "merchandise item"
	}
	var color, style, logos string
	if c := strings.TrimSpace(r.BaseColor); c != "" {
		color = "Base color: " + c + "."
	}
	if s := strings.TrimSpace(r.StyleDescription); s != "" {
		style = "Additional style: " + s + "."
	}
	if names := merchLogos(r); names != "" {
		logos = "Feature the provided " + names + " on the product."
	}
	return lines(
		fmt.Sprintf("Generate a high-end product visualization for a %s for a racing team.", item),
		"The style should be consistent with professional motorsport merchandise photography.",
		color,
		style,
		logos,
	)
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

const (
	artPreamble     = "(Professional High-Impact Motorsport Promotion Art, 8k resolution, Masterpiece)."
	artFinalPolish  = "FINAL POLISH: Ensure a high-end commercial aesthetic."
	genericArtStyle = "STYLE: Professional motorsport promotion art with a bold, clean composition and dynamic lighting."
)

// artStyles は STYLE_TRANSFER 以外の画風テンプレートです。
var artStyles = map[domain.ArtStyle]string{
	domain.StyleIllustration: "STYLE: Dynamic Motorsport Vector Illustration. High-impact perspective with converging radial speed lines.",
	domain.StyleMinimalist: lines(
		"STYLE: Masterful High-Contrast Minimalist Flat Vector Illustration.",
		"TECHNIQUE: 100% flat color blocks with zero gradients, zero textures, and zero soft shading.",
		"SHADOW LOGIC: Large, solid black graphic shadows with perfectly sharp edges define the car's form and its contact with the ground.",
		"ENVIRONMENT: Ultra-minimalist graphic space. A simple, solid primary-color field (Bold Blue, Vibrant Red, or Minimalist Gray).",
		"COMPOSITION: Iconic, centered framing. The car is treated as a bold graphic object, similar to a high-end vintage poster or modern sticker art.",
		"COLOR PALETTE: Highly saturated primary colors (Red, Yellow, Blue) with deep black accents for shadows.",
	),
	domain.StyleGeometricVector: lines(
		"STYLE: Modern Geometric Perspective Vector Illustration.",
		"TECHNIQUE: Clean, sharp vector shapes creating deep architectural storytelling with dramatic isometric or high-converging perspective.",
		"VISUALS: The car is integrated into a highly organized environment such as a sun-drenched coastal street with pastel buildings, a modern interior with arched windows and warm sunbeams, or a surreal minimalist landscape with oversized everyday objects.",
		"SHADOWS: Dramatic, hard-edged solid-color shadows (deep blues, rich ochres) that define the architectural volume.",
		"COLOR PALETTE: Vibrant, saturated primaries mixed with soft creamy neutrals and atmospheric shadow tones.",
		"ATMOSPHERE: Serene, nostalgic lofi aesthetic with high-end graphical precision.",
	),
	domain.StyleModernVector: lines(
		"STYLE: Clean Modern Vector Illustration.",
		"TECHNIQUE: 100% flat color blocking with zero gradients. Sharp, high-contrast, hard-edged solid black shadows.",
		"ENVIRONMENT: Minimalist urban or racing scenery, for example a high-tech pit garage entrance, a single stylized light tower against a saturated pink or cobalt sky, a racetrack sector with bold asphalt markings, or a coastal road with sharp yellow lane lines.",
		"COLOR PALETTE: High-saturation pop art colors. Deep blues, vibrant pinks, sun-drenched yellows, and turquoise.",
		"COMPOSITION: The car is a clean, graphical subject within a static, serene, bold geometric environment.",
	),
	domain.StyleTechnicalSpec: lines(
		"STYLE: Professional Automotive Technical Design Sheet.",
		"LAYOUT: A multi-view composition within a single frame.",
		"- PRIMARY VIEW: A large, clean perspective view of the car as the centerpiece.",
		"- SECONDARY VIEWS: Two smaller inset panels showing a rear-quarter view and a technical close-up of a specific component such as a racing wheel or rear aero wing.",
		"VISUAL TECHNIQUE: High-end technical vector illustration with flat cel-shading, sharp hard-edged shadows, and bold solid color fills.",
		"BACKGROUND: A minimalist, clean desaturated infinite space.",
		"GRAPHIC ACCENTS: Bold diagonal geometric shapes (parallelograms and racing stripes) in the primary and accent colors of the car's livery. No numbers or labels.",
	),
	domain.StyleStudioCloseup: "STYLE: High-End Ultra-Minimalist Studio Launch. A pure, infinite and void-like environment.",
	domain.StyleNeonNight:     "STYLE: Neo-Cyberpunk Night Racing. High-saturation neon reflections on wet asphalt.",
	domain.StyleCityPop: lines(
		"STYLE: 1980s Japanese City Pop Resort Illustration.",
		"TECHNIQUE: Clean, flat colors, minimalist shading, and hard-edged shadows with vibrant color gradients.",
		"ENVIRONMENT: A pristine professional racing circuit under a brilliant clear sun, with gray asphalt, bold checkered curbs, minimalist pit lane structures, and empty grandstands in the distance.",
		"SKY: A crystal-clear, deep cobalt blue sky with subtle horizontal gradients characteristic of 80s pop art.",
		"LIGHTING: Bright midday sun creating high-contrast, sharp shadows on the ground and car body.",
		"COLOR PALETTE: Dominant cobalt blue, turquoise, vibrant track-marker colors, and pastel accents. The car's livery is adapted to this flat style while keeping its original color scheme.",
	),
	domain.StyleHolographic: "STYLE: Futuristic Holographic Iridescent Illustration.",
	domain.StyleCityPainting: lines(
		"STYLE: Professional Single-Frame Motorsport Art (Dynamic City Racing Painting).",
		"LAYOUT: A single, grand, ultra-cinematic wide-angle frame.",
		"SCENE: The car is captured in an aggressive high-speed drift through a towering metropolitan street circuit.",
		"TECHNIQUE: A fusion of digital realism and expressive painterly brushwork with visible impasto strokes and vibrant speed-trail effects.",
		"LIGHTING: Golden-hour sunset casting warm orange highlights on the skyscrapers and long shadows across the narrow track.",
		"BACKGROUND: A cream-colored canvas aesthetic with towering architectural landmarks drawn with a slight architectural sketch feel.",
		"COLOR PALETTE: High contrast. The car's livery is the focal point and pops against the warm, neutral city environment.",
	),
}

func compileArt(r domain.ArtRequest) domain.CompiledPrompt {
	var style string
	if r.Style == domain.StyleTransfer {
		style = styleTransfer(r)
	} else {
		style = artStyle(r)
	}
	return domain.CompiledPrompt{
		Text: assemble(
			artPreamble,
			artSubject(r),
			"VISUAL STYLE: "+style,
			artBranding(r),
			artFinalPolish,
		),
		Attachments: collect(
			domain.Attachment{Role: domain.RolePrimaryCar, Image: r.PrimaryCar},
			domain.Attachment{Role: domain.RoleSecondaryCar, Image: r.SecondaryCar},
			domain.Attachment{Role: domain.RoleStyleReference, Image: r.StyleRef},
			domain.Attachment{Role: domain.RoleEventLogo, Image: r.EventLogo},
			domain.Attachment{Role: domain.RoleSponsorLogo, Image: r.SponsorLogo},
			domain.Attachment{Role: domain.RoleTeamLogo, Image: r.TeamLogo},
		),
	}
}

func artSubject(r domain.ArtRequest) string {
	if !r.SecondaryCar.IsZero() {
		return lines(
			"SUBJECT: TWO high-performance racing cars as identified from the provided \"Car Image 1\" and \"Car Image 2\".",
			"CRITICAL DETAIL REQUIREMENT: For EACH car, you MUST replicate every detail of its aerodynamic body and livery patterns, stylized into the chosen artistic medium.",
		)
	}
	return lines(
		"SUBJECT: ONE high-performance racing car as identified from the provided \"Car Image\".",
		"CRITICAL DETAIL REQUIREMENT: For the car, you MUST replicate every detail of its aerodynamic body and livery patterns, stylized into the chosen artistic medium.",
	)
}

// styleTransfer はスタイルDNA複製の指示を組み立てます。
// 抽出済みのスタイル文があれば再解析より優先し、参照画像もなければ解析対象は何もありません。
func styleTransfer(r domain.ArtRequest) string {
	var dna string
	switch {
	case strings.TrimSpace(r.StyleText) != "":
		dna = fmt.Sprintf("CORE STYLE DNA: \"%s\".", strings.TrimSpace(r.StyleText))
	case !r.StyleRef.IsZero():
		dna = "Analyze the provided \"Style Reference Image\" to extract artistic technique and composition."
	}
	var supplement string
	if s := strings.TrimSpace(r.Supplement); s != "" {
		supplement = fmt.Sprintf("ADDITIONAL USER INSTRUCTIONS: \"%s\".", s)
	}
	return lines(
		"STYLE: ARTISTIC DNA REPLICATION.",
		dna,
		supplement,
		ColorSourceRule,
		"EXECUTION: Render the car from the \"Car Image\" into a scene that clones the artistic atmosphere, brushwork, and layout described in the DNA, using the car's color palette for all environment elements.",
	)
}

func artStyle(r domain.ArtRequest) string {
	style, ok := artStyles[r.Style]
	if !ok {
		style = genericArtStyle
	}
	var notes, supplement string
	if s := strings.TrimSpace(r.StyleText); s != "" {
		notes = fmt.Sprintf("ADDITIONAL DESIGN NOTES: \"%s\".", s)
	}
	if s := strings.TrimSpace(r.Supplement); s != "" {
		supplement = fmt.Sprintf("ADDITIONAL USER INSTRUCTIONS: \"%s\".", s)
	}
	return lines(style, notes, supplement)
}

func artBranding(r domain.ArtRequest) string {
	var rules []string
	if !r.SponsorLogo.IsZero() {
		rules = append(rules, "- "+sponsorLogoName+": Integrate as a professional decal on the car's side panels and hood.")
	}
	if !r.TeamLogo.IsZero() {
		rules = append(rules, "- "+teamLogoName+": Integrate on the car's wing endplates and nose, and optionally as a subtle graphic watermark in the background.")
	}
	if !r.EventLogo.IsZero() {
		rules = append(rules, "- "+eventLogoName+": Place as a clean graphic overlay in a corner of the composition, never covering the car.")
	}
	if len(rules) == 0 {
		return ""
	}
	return lines(append([]string{"BRANDING:"}, rules...)...)
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

const (
	scenePreamble      = "(Professional Motorsport CGI, 8k Ultra-High Resolution, Masterpiece Photorealistic Render)."
	sheetPreamble      = "(Professional Automotive Technical Livery Spec Sheet, 8k, Flat Design Style)."
	sceneVisuals       = "VISUALS: Cinematic lighting, realistic ray-traced reflections on car paint and windows, high-fidelity textures."
	genericEnvironment = "A clean, professional motorsport setting with balanced cinematic lighting that keeps the focus on the car."
)

// placements は2台構成のときの配置文です。囲われたセットでは横並び、それ以外は先行車と追走車になります。
var placements = map[domain.Scenario]string{
	domain.ScenarioPaddock: sideBySide,
	domain.ScenarioGarage:  sideBySide,
}

const (
	sideBySide   = "The two cars must be positioned SIDE-BY-SIDE (parallel) inside the bay, facing the camera, perfectly aligned like a factory racing team."
	leadAndChase = "The LEAD car is in front, and the CHASE car is slightly behind and to the side."
)

// environments はシナリオごとの環境描写テンプレートです。
var environments = map[domain.Scenario]func(domain.SceneRequest) string{
	domain.ScenarioRace: func(domain.SceneRequest) string {
		return "High-speed racing action on a world-class FIA grade racetrack with motion blur asphalt and glowing brake discs."
	},
	domain.ScenarioLaunch: func(domain.SceneRequest) string {
		return "Minimalist high-end professional automotive photography studio. Pure white infinite floor and background. " +
			"Soft, broad overhead softbox lighting creating elegant highlight gradients along the car's body. Sharp contact shadows on the floor. 8k ultra-sharp detail."
	},
	domain.ScenarioGarage:  garageEnvironment,
	domain.ScenarioPaddock: paddockEnvironment,
}

func garageEnvironment(r domain.SceneRequest) string {
	walls := "- WALL BRANDING: The primary structural walls carry large-scale architectural graphics in the livery colors (brushed metal or back-lit LED)."
	if !r.TeamLogo.IsZero() {
		walls = "- WALL BRANDING: The " + teamLogoName + " must be prominently integrated onto the primary structural walls as a large-scale high-end architectural sign " +
			"(brushed metal or back-lit LED) or etched into the glass of the upper mezzanine office."
	}
	accents := "- ACCENTS: Wall trims and equipment accents reflect the color palette of the primary racing car livery."
	if !r.PatternRef.IsZero() {
		accents = "- ACCENTS: Replicate the graphic motifs and design DNA of the uploaded \"Pattern Reference\" on the wall trims and equipment accents."
	}
	return lines(
		"Vast, ultra-high-end professional racing headquarters factory workshop.",
		"ENVIRONMENT DETAIL:",
		"- ARCHITECTURE: Minimalist, massive multi-level industrial design.",
		"- MEZZANINE: A visible second-floor garage office with floor-to-ceiling glass partitions overlooking the workshop floor, with soft ambient lighting and silhouettes of workstation screens.",
		walls,
		accents,
		"- FLOOR: Polished gray industrial concrete with subtle, elegant reflections of the overhead lighting.",
		"- ASSETS: Organized stacks of racing tire slicks on bespoke matte-black racks and high-tech tool chests with carbon fiber finishes. A cluster of glowing telemetry monitors on a mobile workstation in the mid-ground.",
		"- LIGHTING: Broad, cinematic linear LED strips integrated into the ceiling, creating sharp, high-contrast highlights on the car's silhouette.",
		"- ATMOSPHERE: Clinical, expensive, hyper-organized factory headquarters.",
	)
}

func paddockEnvironment(r domain.SceneRequest) string {
	present := map[string]bool{sponsorLogoName: !r.SponsorLogo.IsZero(), teamLogoName: !r.TeamLogo.IsZero()}
	walls := "The walls feature large-scale integrated graphics in the livery colors."
	if names := logoNames(present, sponsorLogoName, teamLogoName); names != "" {
		walls = "The walls feature large-scale integrated branding: the " + names +
			" must appear as bold, back-lit architectural elements integrated directly into the surface of the partition panels."
	}
	design := "- PADDOCK WALL DESIGN: The walls reflect the color palette and geometric DNA of the primary racing car livery."
	if !r.PatternRef.IsZero() {
		design = "- PADDOCK WALL DESIGN: Replicate the exact graphic motifs and design DNA from the uploaded \"Pattern Reference\" across the surface of the primary partition wall panels."
	}
	return lines(
		"Professional high-end Racing Paddock Garage interior, hyper-organized and technologically advanced.",
		"ENVIRONMENT DETAIL:",
		"- CEILING: Massive, high-precision overhead lightbox panels arranged in a clean geometric grid, providing clinical, soft-shadow lighting.",
		"- FLOOR: Ultra-high-gloss dark charcoal polished epoxy floor with razor-sharp mirror reflections of the cars and the surrounding branding.",
		"- WALL STRUCTURE: Thick, high-end modular partition walls with back-lit glowing panels. "+walls,
		design,
		"- ASSETS: Racing slicks on matte-black tire trolleys arranged symmetrically on both sides of the bay, multi-drawer tool cabinets against the back walls, and a telemetry cart in the periphery.",
		"- ATMOSPHERE: High-pressure race-day focus with deep perspective layers.",
	)
}

func compileScene(r domain.SceneRequest) domain.CompiledPrompt {
	var text string
	if r.Format == domain.FormatThreeViewSheet {
		text = threeViewSheet(r)
	} else {
		text = renderedScene(r)
	}
	return domain.CompiledPrompt{
		Text: text,
		Attachments: collect(
			domain.Attachment{Role: domain.RolePrimaryCar, Image: r.PrimaryCarRef},
			domain.Attachment{Role: domain.RoleSecondaryCar, Image: r.SecondaryCarRef},
			domain.Attachment{Role: domain.RolePattern, Image: r.PatternRef},
			domain.Attachment{Role: domain.RoleSponsorLogo, Image: r.SponsorLogo},
			domain.Attachment{Role: domain.RoleTeamLogo, Image: r.TeamLogo},
		),
	}
}

// threeViewSheet はシナリオを無視し、固定の2D正投影レイアウトを描写します。
func threeViewSheet(r domain.SceneRequest) string {
	return assemble(
		sheetPreamble,
		fmt.Sprintf("SUBJECT: Technical 3-view orthographic projection of a %s.", carName(r.PrimaryModel)),
		lines(
			"LAYOUT:",
			"- LEFT: A large Top-Down View showing the full roof and hood livery.",
			"- RIGHT COLUMN: A sharp Front View and a clean Side Profile View (Left Side).",
		),
		"VISUAL STYLE: Clean graphic illustration on a pure white background. Minimalist shading to emphasize the livery design and body lines.",
		liveryInstruction(r),
		logoPlacement(r),
		"STRICT: This is a 2D technical layout. No perspective distortion. No environment.",
	)
}

func renderedScene(r domain.SceneRequest) string {
	env, ok := environments[r.Scenario]
	environment := genericEnvironment
	if ok {
		environment = env(r)
	}
	var perspective string
	if p := strings.TrimSpace(r.Perspective); p != "" {
		perspective = "PERSPECTIVE: " + p + "."
	}
	return assemble(
		scenePreamble,
		sceneSubject(r),
		liveryInstruction(r),
		perspective,
		"ENVIRONMENT: "+environment,
		sceneVisuals,
		logoPlacement(r),
	)
}

// sceneSubject は参照画像の枚数に応じて被写体の表現を切り替えます。
// 参照画像がある場合はモデル名ではなく画像との一致を求めます。
func sceneSubject(r domain.SceneRequest) string {
	placement, ok := placements[r.Scenario]
	if !ok {
		placement = leadAndChase
	}
	hasPrimary, hasSecondary := !r.PrimaryCarRef.IsZero(), !r.SecondaryCarRef.IsZero()
	switch {
	case hasPrimary && hasSecondary:
		return lines(
			"SUBJECT: TWO high-performance racing cars.",
			"- CAR 1 (PRIMARY): Must look exactly like the first uploaded \"Car Reference Image\".",
			"- CAR 2 (SUPPORT): Must look exactly like the second uploaded \"Car Reference Image\".",
			"PLACEMENT: "+placement,
		)
	case hasPrimary || hasSecondary:
		s := "SUBJECT: A high-performance racing car that must look exactly like the uploaded \"Car Reference Image\"."
		if strings.TrimSpace(r.SecondaryModel) != "" {
			s = lines(
				s,
				fmt.Sprintf("A second %s accompanies it.", carName(r.SecondaryModel)),
				"PLACEMENT: "+placement,
			)
		}
		return s
	case strings.TrimSpace(r.SecondaryModel) != "":
		return lines(
			fmt.Sprintf("SUBJECT: A dynamic pair of %s and %s racing cars.", modelOrDefault(r.PrimaryModel), modelOrDefault(r.SecondaryModel)),
			"PLACEMENT: "+placement,
		)
	default:
		return fmt.Sprintf("SUBJECT: A %s.", carName(r.PrimaryModel))
	}
}

func modelOrDefault(model string) string {
	if model = strings.TrimSpace(model); model != "" {
		return model
	}
	return "high-performance"
}

// logoPlacement は添付されたロゴの役割ごとの配置規則だけを列挙します。
func logoPlacement(r domain.SceneRequest) string {
	var rules []string
	if !r.SponsorLogo.IsZero() {
		rules = append(rules, "- SPONSOR LOGO: Must be placed on core body positions, specifically the large side door panels and the center of the front hood.")
	}
	if !r.TeamLogo.IsZero() {
		rules = append(rules, "- TEAM LOGO: Must be placed on the rear wing endplates, above the front badge, on both sides of the front nose, and centered on the roof.")
	}
	if len(rules) == 0 {
		return ""
	}
	return lines(append([]string{"LOGO PLACEMENT RULES:"}, rules...)...)
}

package domain

import "strings"

// RequestKind はデザインリクエストの種別です。
type RequestKind string

const (
	KindScene RequestKind = "scene"
	KindArt   RequestKind = "art"
	KindMerch RequestKind = "merch"
)

// AspectRatio は生成画像のアスペクト比 ("16:9" 等) です。
type AspectRatio string

const (
	AspectSquare       AspectRatio = "1:1"
	AspectPortrait2x3  AspectRatio = "2:3"
	AspectLandscape3x2 AspectRatio = "3:2"
	AspectPortrait3x4  AspectRatio = "3:4"
	AspectLandscape4x3 AspectRatio = "4:3"
	AspectPortrait     AspectRatio = "9:16"
	AspectLandscape    AspectRatio = "16:9"
	AspectUltrawide    AspectRatio = "21:9"
)

// ImageSource は参照画像の所在です。
// "data:<mime>;base64,<payload>" 形式のデータURIのほか、http(s)/gs:// のURIやローカルパスを受け付けます。
// 空文字列は「画像なし」を表します。
type ImageSource string

// IsZero は画像が指定されていない場合に true を返します。
func (s ImageSource) IsZero() bool {
	return strings.TrimSpace(string(s)) == ""
}

// DesignRequest はプロンプトコンパイラが受け付けるリクエストの共通インターフェースです。
// 実装は SceneRequest, ArtRequest, MerchRequest の3種類に限られます。
type DesignRequest interface {
	Kind() RequestKind
	Aspect() AspectRatio
	isDesignRequest()
}

// Scenario はシーンポスターの舞台設定です。
type Scenario string

const (
	ScenarioRace    Scenario = "RACE"
	ScenarioLaunch  Scenario = "LAUNCH"
	ScenarioGarage  Scenario = "GARAGE"
	ScenarioPaddock Scenario = "PADDOCK"
)

// OutputFormat はシーンポスターの出力形式です。
type OutputFormat string

const (
	FormatRendered3D     OutputFormat = "RENDERED_3D"
	FormatThreeViewSheet OutputFormat = "THREE_VIEW_SHEET"
)

// SceneRequest は実車レンダリングのポスター、または3面図シートの生成要求です。
type SceneRequest struct {
	PrimaryModel    string       `json:"primaryModel"`
	SecondaryModel  string       `json:"secondaryModel,omitempty"`
	LiveryNotes     string       `json:"liveryNotes,omitempty"`
	Perspective     string       `json:"perspective,omitempty"`
	Scenario        Scenario     `json:"scenario"`
	Format          OutputFormat `json:"format,omitempty"`
	PrimaryCarRef   ImageSource  `json:"primaryCarRef,omitempty"`
	SecondaryCarRef ImageSource  `json:"secondaryCarRef,omitempty"`
	PatternRef      ImageSource  `json:"patternRef,omitempty"`
	SponsorLogo     ImageSource  `json:"sponsorLogo,omitempty"`
	TeamLogo        ImageSource  `json:"teamLogo,omitempty"`
	AspectRatio     AspectRatio  `json:"aspectRatio"`
}

func (SceneRequest) Kind() RequestKind     { return KindScene }
func (r SceneRequest) Aspect() AspectRatio { return r.AspectRatio }
func (SceneRequest) isDesignRequest()      {}

// ArtStyle はアートポスターの画風です。
type ArtStyle string

const (
	StyleIllustration    ArtStyle = "ILLUSTRATION"
	StyleMinimalist      ArtStyle = "MINIMALIST"
	StyleGeometricVector ArtStyle = "GEOMETRIC_VECTOR"
	StyleModernVector    ArtStyle = "MODERN_VECTOR"
	StyleTechnicalSpec   ArtStyle = "TECHNICAL_SPEC"
	StyleStudioCloseup   ArtStyle = "STUDIO_CLOSEUP"
	StyleNeonNight       ArtStyle = "NEON_NIGHT"
	StyleCityPop         ArtStyle = "CITY_POP"
	StyleHolographic     ArtStyle = "HOLOGRAPHIC"
	StyleCityPainting    ArtStyle = "CITY_PAINTING"
	StyleTransfer        ArtStyle = "STYLE_TRANSFER"
)

// ArtRequest はアートポスター、およびスタイルDNA複製の生成要求です。
//
// StyleText は STYLE_TRANSFER では抽出済みのスタイルDNA、それ以外の画風ではデザインメモとして扱われます。
type ArtRequest struct {
	Style        ArtStyle    `json:"style"`
	PrimaryCar   ImageSource `json:"primaryCar,omitempty"`
	SecondaryCar ImageSource `json:"secondaryCar,omitempty"`
	StyleRef     ImageSource `json:"styleRef,omitempty"`
	EventLogo    ImageSource `json:"eventLogo,omitempty"`
	SponsorLogo  ImageSource `json:"sponsorLogo,omitempty"`
	TeamLogo     ImageSource `json:"teamLogo,omitempty"`
	StyleText    string      `json:"styleText,omitempty"`
	Supplement   string      `json:"supplement,omitempty"`
	AspectRatio  AspectRatio `json:"aspectRatio"`
}

func (ArtRequest) Kind() RequestKind     { return KindArt }
func (r ArtRequest) Aspect() AspectRatio { return r.AspectRatio }
func (ArtRequest) isDesignRequest()      {}

// MerchItem はグッズの種類です。
type MerchItem string

const (
	ItemApparel    MerchItem = "APPAREL"
	ItemScaleModel MerchItem = "SCALE_MODEL"
	ItemBeverage   MerchItem = "BEVERAGE"
	ItemCollection MerchItem = "COLLECTION"
)

// MerchRequest はチームグッズのモックアップ生成要求です。
type MerchRequest struct {
	Item             MerchItem   `json:"item"`
	TeamLogo         ImageSource `json:"teamLogo,omitempty"`
	SponsorLogo      ImageSource `json:"sponsorLogo,omitempty"`
	CarRef           ImageSource `json:"carRef,omitempty"`
	PatternRef       ImageSource `json:"patternRef,omitempty"`
	BaseColor        string      `json:"baseColor,omitempty"`
	StyleDescription string      `json:"styleDescription,omitempty"`
	AspectRatio      AspectRatio `json:"aspectRatio"`
}

func (MerchRequest) Kind() RequestKind     { return KindMerch }
func (r MerchRequest) Aspect() AspectRatio { return r.AspectRatio }
func (MerchRequest) isDesignRequest()      {}

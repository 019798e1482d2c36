package domain

// AttachmentRole は添付画像の意味的な役割です。添付順序の決定にのみ使い、プロンプト本文には出力しません。
type AttachmentRole string

const (
	RolePrimaryCar     AttachmentRole = "primary-car"
	RoleSecondaryCar   AttachmentRole = "secondary-car"
	RolePattern        AttachmentRole = "pattern-reference"
	RoleStyleReference AttachmentRole = "style-reference"
	RoleEventLogo      AttachmentRole = "event-logo"
	RoleSponsorLogo    AttachmentRole = "sponsor-logo"
	RoleTeamLogo       AttachmentRole = "team-logo"
)

// Attachment はプロンプトに添える参照画像1枚分です。
type Attachment struct {
	Role  AttachmentRole
	Image ImageSource
}

// CompiledPrompt はコンパイル済みのプロンプト本文と、順序付きの添付画像です。
type CompiledPrompt struct {
	Text        string
	Attachments []Attachment
}

// GenerationResult は1回の生成呼び出しの結果です。
// ImageURL は "data:<mime>;base64,..." 形式で、そのまま表示に使えます。
type GenerationResult struct {
	ImageURL   string `json:"imageUrl"`
	PromptText string `json:"prompt"`
}

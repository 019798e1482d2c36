package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetType は生成物の表示用カテゴリです。
type AssetType string

const (
	AssetPoster        AssetType = "POSTER"
	AssetArtPoster     AssetType = "ART_POSTER"
	AssetStyleTransfer AssetType = "STYLE_TRANSFER"
	AssetMerch         AssetType = "MERCH"
)

// AssetRecord は生成結果に識別子とタイムスタンプを付与した表示用レコードです。
type AssetRecord struct {
	ID        string          `json:"id"`
	ImageURL  string          `json:"imageUrl"`
	Prompt    string          `json:"prompt"`
	CreatedAt time.Time       `json:"createdAt"`
	Type      AssetType       `json:"type"`
	Request   RequestEnvelope `json:"request"`
}

// NewAssetRecord は生成結果から AssetRecord を作成します。
func NewAssetRecord(req DesignRequest, result GenerationResult, now time.Time) (AssetRecord, error) {
	env, err := NewEnvelope(req)
	if err != nil {
		return AssetRecord{}, err
	}
	return AssetRecord{
		ID:        uuid.NewString(),
		ImageURL:  result.ImageURL,
		Prompt:    result.PromptText,
		CreatedAt: now.UTC(),
		Type:      AssetTypeOf(req),
		Request:   env,
	}, nil
}

// AssetTypeOf はリクエストの種別から表示カテゴリを決定します。
func AssetTypeOf(req DesignRequest) AssetType {
	switch r := Normalize(req).(type) {
	case ArtRequest:
		if r.Style == StyleTransfer {
			return AssetStyleTransfer
		}
		return AssetArtPoster
	case MerchRequest:
		return AssetMerch
	default:
		return AssetPoster
	}
}

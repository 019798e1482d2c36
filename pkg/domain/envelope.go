package domain

import (
	"encoding/json"
	"fmt"
)

// RequestEnvelope は DesignRequest を種別タグ付きで JSON 化するためのラッパーです。
type RequestEnvelope struct {
	Kind  RequestKind   `json:"kind"`
	Scene *SceneRequest `json:"scene,omitempty"`
	Art   *ArtRequest   `json:"art,omitempty"`
	Merch *MerchRequest `json:"merch,omitempty"`
}

// Normalize はポインタで渡されたリクエストを値に揃えます。
// nil ポインタはその種別のゼロ値になります。
func Normalize(req DesignRequest) DesignRequest {
	switch r := req.(type) {
	case *SceneRequest:
		if r == nil {
			return SceneRequest{}
		}
		return *r
	case *ArtRequest:
		if r == nil {
			return ArtRequest{}
		}
		return *r
	case *MerchRequest:
		if r == nil {
			return MerchRequest{}
		}
		return *r
	default:
		return req
	}
}

// NewEnvelope はリクエストをエンベロープに包みます。
func NewEnvelope(req DesignRequest) (RequestEnvelope, error) {
	switch r := Normalize(req).(type) {
	case SceneRequest:
		return RequestEnvelope{Kind: KindScene, Scene: &r}, nil
	case ArtRequest:
		return RequestEnvelope{Kind: KindArt, Art: &r}, nil
	case MerchRequest:
		return RequestEnvelope{Kind: KindMerch, Merch: &r}, nil
	default:
		return RequestEnvelope{}, fmt.Errorf("未対応のリクエスト型です: %T", req)
	}
}

// Request はエンベロープの中身を取り出します。
func (e RequestEnvelope) Request() (DesignRequest, error) {
	switch e.Kind {
	case KindScene:
		if e.Scene == nil {
			return nil, fmt.Errorf("kind=%s に対応する本体がありません", e.Kind)
		}
		return *e.Scene, nil
	case KindArt:
		if e.Art == nil {
			return nil, fmt.Errorf("kind=%s に対応する本体がありません", e.Kind)
		}
		return *e.Art, nil
	case KindMerch:
		if e.Merch == nil {
			return nil, fmt.Errorf("kind=%s に対応する本体がありません", e.Kind)
		}
		return *e.Merch, nil
	default:
		return nil, fmt.Errorf("不明なリクエスト種別です: %q", e.Kind)
	}
}

// DecodeRequest は JSON のエンベロープから DesignRequest を復元します。
func DecodeRequest(data []byte) (DesignRequest, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("リクエストJSONの解析に失敗しました: %w", err)
	}
	return env.Request()
}

// EncodeRequest は DesignRequest をエンベロープ形式の JSON にします。
func EncodeRequest(req DesignRequest) ([]byte, error) {
	env, err := NewEnvelope(req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest は必須項目の欠落など、呼び出し側で弾くべきリクエストを表します。
var ErrInvalidRequest = errors.New("invalid design request")

// Validate は生成前の受付チェックを行います。
// プロンプトコンパイラ自体はこのチェックを行わず、どんな入力でも劣化した結果を返します。
func Validate(req DesignRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	req = Normalize(req)

	var missing []string
	if strings.TrimSpace(string(req.Aspect())) == "" {
		missing = append(missing, "aspectRatio")
	}

	switch r := req.(type) {
	case SceneRequest:
		if strings.TrimSpace(r.PrimaryModel) == "" && r.PrimaryCarRef.IsZero() {
			missing = append(missing, "primaryModel or primaryCarRef")
		}
	case ArtRequest:
		if r.PrimaryCar.IsZero() {
			missing = append(missing, "primaryCar")
		}
		if r.Style == StyleTransfer && r.StyleRef.IsZero() {
			missing = append(missing, "styleRef")
		}
	case MerchRequest:
		if strings.TrimSpace(string(r.Item)) == "" {
			missing = append(missing, "item")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp"
)

// PNGMimeType は正規化後の画像の MIME タイプです。
const PNGMimeType = "image/png"

// NormalizePNG は画像データ（PNG, GIF, JPEG, WebP）を PNG 形式に揃えます。
// 入力がすでに PNG の場合は再エンコードせずにそのまま返します。
func NormalizePNG(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}
	if format == "png" {
		return data, nil
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("PNGへのエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

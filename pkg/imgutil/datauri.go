package imgutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidDataURI はデータURIの形式、または base64 本体が不正な場合に返されます。
var ErrInvalidDataURI = errors.New("invalid data uri")

var dataURIRegex = regexp.MustCompile(`^data:([^;,]*)((?:;[^;,]+)*);base64,`)

// IsDataURI は値が "data:" で始まるかどうかを判定します。
func IsDataURI(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), "data:")
}

// ParseDataURI は "data:<mime>;base64,<payload>" を MIME タイプとデコード済みバイト列に分解します。
// MIME タイプが省略されている場合は空文字列を返します。
func ParseDataURI(value string) (string, []byte, error) {
	value = strings.TrimSpace(value)
	matches := dataURIRegex.FindStringSubmatch(value)
	if matches == nil {
		return "", nil, fmt.Errorf("%w: base64 形式のデータURIではありません", ErrInvalidDataURI)
	}

	payload := strings.TrimSpace(value[len(matches[0]):])
	if payload == "" {
		return "", nil, fmt.Errorf("%w: 本体が空です", ErrInvalidDataURI)
	}
	data, err := decodeBase64(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return strings.TrimSpace(matches[1]), data, nil
}

// EncodeDataURI はバイト列を表示用のデータURIに変換します。mimeType が空の場合は PNG とみなします。
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = PNGMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// パディングの有無が混在するため両方を試します。
func decodeBase64(payload string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

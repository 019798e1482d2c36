package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"ループバック", "http://127.0.0.1/evil.png"},
		{"プライベート", "https://10.0.0.8/img.png"},
		{"リンクローカル", "http://169.254.169.254/latest/meta-data"},
		{"IPv6ループバック", "http://[::1]/img.png"},
		{"不許可スキーム", "ftp://example.com/img.png"},
		{"不正なURL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := IsSafeURL(tt.url)
			assert.False(t, safe)
			assert.Error(t, err)
		})
	}

	t.Run("公開IPリテラルは名前解決なしで許可", func(t *testing.T) {
		safe, err := IsSafeURL("https://8.8.8.8/img.png")
		assert.NoError(t, err)
		assert.True(t, safe)
	})
}

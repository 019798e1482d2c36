package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/gemini-livery-kit/pkg/imgutil"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ImageLoader は ImageSource をスキームに応じて取得します。
//
//   - data:      データURIをデコード
//   - http(s):// SSRF チェックの後 httpClient で取得
//   - gs://      reader で読み込み
//   - それ以外  allowLocalFiles が有効な場合のみローカルファイルとして読み込み
//
// httpClient と reader は nil を許容します。その場合、該当スキームの画像はエラーになります。
type ImageLoader struct {
	httpClient      httpkit.ClientInterface
	reader          remoteio.InputReader
	allowLocalFiles bool
	checkURL        func(string) (bool, error)
}

// NewImageLoader は依存関係を注入して ImageLoader を初期化します。
func NewImageLoader(httpClient httpkit.ClientInterface, reader remoteio.InputReader, allowLocalFiles bool) *ImageLoader {
	return &ImageLoader{
		httpClient:      httpClient,
		reader:          reader,
		allowLocalFiles: allowLocalFiles,
		checkURL:        IsSafeURL,
	}
}

// Load は画像のバイト列を返します。空の画像はエラーとして扱います。
func (l *ImageLoader) Load(ctx context.Context, src domain.ImageSource) ([]byte, error) {
	raw := strings.TrimSpace(string(src))
	if raw == "" {
		return nil, fmt.Errorf("画像が指定されていません")
	}

	data, err := l.fetch(ctx, raw)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("画像データが空です: %s", describeSource(raw))
	}
	return data, nil
}

func (l *ImageLoader) fetch(ctx context.Context, raw string) ([]byte, error) {
	switch {
	case imgutil.IsDataURI(raw):
		_, data, err := imgutil.ParseDataURI(raw)
		return data, err

	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		if safe, err := l.checkURL(raw); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		if l.httpClient == nil {
			return nil, fmt.Errorf("HTTPクライアントが設定されていないため取得できません: %s", raw)
		}
		return l.httpClient.FetchBytes(ctx, raw)

	case strings.HasPrefix(raw, "gs://"):
		if l.reader == nil {
			return nil, fmt.Errorf("リモートリーダーが設定されていないため取得できません: %s", raw)
		}
		rc, err := l.reader.Open(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("リモートファイルのオープンに失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)

	case strings.Contains(raw, "://"):
		return nil, fmt.Errorf("未対応のスキームです: %s", raw)

	default:
		if !l.allowLocalFiles {
			return nil, fmt.Errorf("ローカルファイルの読み込みは許可されていません: %s", raw)
		}
		return os.ReadFile(raw)
	}
}

// describeSource はログやエラー用に、データURIの本体を省いた表記を返します。
func describeSource(raw string) string {
	if imgutil.IsDataURI(raw) {
		if idx := strings.IndexByte(raw, ','); idx >= 0 {
			return raw[:idx] + ",..."
		}
	}
	return raw
}

package generator

import (
	"time"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
)

const (
	DefaultImageModel    = "gemini-3-pro-image-preview"
	DefaultAnalysisModel = "gemini-3-flash-preview"
	DefaultImageSize     = "1K"
	DefaultTimeout       = 180 * time.Second
)

// 1回の生成呼び出しでログに出す状態です。
const (
	StateBuilt      = "BUILT"
	StateDispatched = "DISPATCHED"
	StateFulfilled  = "FULFILLED"
	StateFailed     = "FAILED"
)

// BatchItem は GenerateBatch の1件分の結果です。Index は入力スライスでの位置です。
type BatchItem struct {
	Index  int
	Result *domain.GenerationResult
	Err    error
}

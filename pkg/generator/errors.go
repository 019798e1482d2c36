package generator

import "errors"

// ErrorKind は生成処理の失敗分類です。
type ErrorKind string

const (
	KindAnalysisFailed    ErrorKind = "ANALYSIS_FAILED"
	KindGenerationFailed  ErrorKind = "GENERATION_FAILED"
	KindNoImageInResponse ErrorKind = "NO_IMAGE_IN_RESPONSE"
	KindInvalidAttachment ErrorKind = "INVALID_ATTACHMENT"
)

// 分類ごとの番兵エラーです。errors.Is で Kind が一致するかを判定できます。
var (
	ErrAnalysisFailed    = &Error{Kind: KindAnalysisFailed, Message: "スタイル解析に失敗しました"}
	ErrGenerationFailed  = &Error{Kind: KindGenerationFailed, Message: "画像生成に失敗しました"}
	ErrNoImageInResponse = &Error{Kind: KindNoImageInResponse, Message: "レスポンスに画像が含まれていません"}
	ErrInvalidAttachment = &Error{Kind: KindInvalidAttachment, Message: "添付画像を解決できません"}
)

// Error は分類付きのエラーです。Op は失敗した操作名、Cause は下位のエラーです。
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is は Kind が一致する *Error を同一とみなします。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && e.Kind == t.Kind
}

// KindOf はエラーチェーンから最初に見つかった分類を返します。
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsGenerationFailure は通信失敗と画像なし応答のどちらでも true を返します。
// 両者を区別しない呼び出し側はこちらを使います。
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrGenerationFailed) || errors.Is(err, ErrNoImageInResponse)
}

func newError(kind ErrorKind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Cause: cause}
}

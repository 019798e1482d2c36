package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"
)

// --- Mocks ---

type transportCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type mockTransport struct {
	mu         sync.Mutex
	calls      []transportCall
	generateFn func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockTransport) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, transportCall{model: model, contents: contents, config: config})
	m.mu.Unlock()
	if m.generateFn != nil {
		return m.generateFn(ctx, model, contents, config)
	}
	return imageResponse("image/png", []byte("fake")), nil
}

func (m *mockTransport) lastCall(t *testing.T) transportCall {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		t.Fatal("transport was not called")
	}
	return m.calls[len(m.calls)-1]
}

// mockHTTPClient は FetchBytes 以外のメソッドを埋め込みインターフェースに委ねます。
type mockHTTPClient struct {
	httpkit.ClientInterface
	data    []byte
	err     error
	fetched []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	return m.data, m.err
}

type mockReader struct {
	files map[string][]byte
	err   error
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.files[uri])), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	for name := range m.files {
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}

// --- Helpers ---

func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func textResponse(text string, reason genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
			FinishReason: reason,
		}},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func dataURI(mimeType string, data []byte) domain.ImageSource {
	return domain.ImageSource("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

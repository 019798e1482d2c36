package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/gemini-livery-kit/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGenerator(t *testing.T) {
	t.Run("transport は必須", func(t *testing.T) {
		_, err := NewGenerator(nil, nil)
		assert.Error(t, err)
	})

	t.Run("既定値とオプション", func(t *testing.T) {
		g, err := NewGenerator(&mockTransport{}, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultImageModel, g.model)
		assert.Equal(t, DefaultImageSize, g.imageSize)
		assert.Equal(t, DefaultTimeout, g.timeout)
		assert.NotNil(t, g.loader)

		g, err = NewGenerator(&mockTransport{}, nil, WithModel("custom"), WithImageSize("2K"), WithTimeout(time.Second), WithModel(""))
		require.NoError(t, err)
		assert.Equal(t, "custom", g.model)
		assert.Equal(t, "2K", g.imageSize)
		assert.Equal(t, time.Second, g.timeout)
	})
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	png := pngBytes(t)

	t.Run("ペイロードの構築と結果", func(t *testing.T) {
		transport := &mockTransport{
			generateFn: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return imageResponse("image/jpeg", []byte("jpeg-bytes")), nil
			},
		}
		g, err := NewGenerator(transport, NewImageLoader(nil, nil, false))
		require.NoError(t, err)

		req := domain.SceneRequest{
			PrimaryModel:  "RS01",
			Scenario:      domain.ScenarioRace,
			PrimaryCarRef: dataURI("image/png", png),
			TeamLogo:      dataURI("image/png", png),
			AspectRatio:   domain.AspectLandscape,
		}
		res, err := g.Generate(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "data:image/jpeg;base64,anBlZy1ieXRlcw==", res.ImageURL)
		assert.Equal(t, prompt.Compile(req).Text, res.PromptText)

		call := transport.lastCall(t)
		assert.Equal(t, DefaultImageModel, call.model)
		require.Len(t, call.contents, 1)
		assert.Equal(t, "user", call.contents[0].Role)

		parts := call.contents[0].Parts
		require.Len(t, parts, 3)
		assert.Equal(t, res.PromptText, parts[0].Text)
		for _, p := range parts[1:] {
			require.NotNil(t, p.InlineData)
			assert.Equal(t, "image/png", p.InlineData.MIMEType)
			assert.Equal(t, png, p.InlineData.Data)
		}

		require.NotNil(t, call.config.ImageConfig)
		assert.Equal(t, "16:9", call.config.ImageConfig.AspectRatio)
		assert.Equal(t, "1K", call.config.ImageConfig.ImageSize)
	})

	t.Run("デコードできない画像はそのままPNGとして送る", func(t *testing.T) {
		transport := &mockTransport{}
		g, _ := NewGenerator(transport, nil)

		_, err := g.Generate(ctx, domain.ArtRequest{Style: domain.StyleNeonNight, PrimaryCar: "data:image/png;base64,aGVsbG8=", AspectRatio: "1:1"})
		require.NoError(t, err)

		parts := transport.lastCall(t).contents[0].Parts
		require.Len(t, parts, 2)
		assert.Equal(t, []byte("hello"), parts[1].InlineData.Data)
		assert.Equal(t, "image/png", parts[1].InlineData.MIMEType)
	})

	t.Run("未知のアスペクト比はそのまま送る", func(t *testing.T) {
		transport := &mockTransport{}
		g, _ := NewGenerator(transport, nil)

		_, err := g.Generate(ctx, domain.MerchRequest{Item: domain.ItemBeverage, AspectRatio: "5:4"})
		require.NoError(t, err)
		assert.Equal(t, "5:4", transport.lastCall(t).config.ImageConfig.AspectRatio)
	})

	t.Run("解決できない添付画像は INVALID_ATTACHMENT", func(t *testing.T) {
		transport := &mockTransport{}
		g, _ := NewGenerator(transport, nil)

		_, err := g.Generate(ctx, domain.ArtRequest{Style: domain.StyleNeonNight, PrimaryCar: "data:image/png;base64,@@@"})
		assert.ErrorIs(t, err, ErrInvalidAttachment)
		assert.Empty(t, transport.calls, "送信前に失敗すること")
	})

	t.Run("通信エラーは GENERATION_FAILED", func(t *testing.T) {
		cause := errors.New("503 unavailable")
		transport := &mockTransport{
			generateFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, cause
			},
		}
		g, _ := NewGenerator(transport, nil)

		res, err := g.Generate(ctx, domain.MerchRequest{Item: domain.ItemApparel})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsGenerationFailure(err))
	})

	t.Run("画像のない応答は NO_IMAGE_IN_RESPONSE", func(t *testing.T) {
		transport := &mockTransport{
			generateFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("I cannot draw that", genai.FinishReasonSafety), nil
			},
		}
		g, _ := NewGenerator(transport, nil)

		_, err := g.Generate(ctx, domain.MerchRequest{Item: domain.ItemApparel})
		assert.ErrorIs(t, err, ErrNoImageInResponse)
		assert.NotErrorIs(t, err, ErrGenerationFailed)
		assert.True(t, IsGenerationFailure(err))
		assert.ErrorContains(t, err, "SAFETY")
	})

	t.Run("期限切れは GENERATION_FAILED として返る", func(t *testing.T) {
		transport := &mockTransport{
			generateFn: func(ctx context.Context, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		g, _ := NewGenerator(transport, nil, WithTimeout(10*time.Millisecond))

		_, err := g.Generate(ctx, domain.MerchRequest{Item: domain.ItemApparel})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil リクエスト", func(t *testing.T) {
		g, _ := NewGenerator(&mockTransport{}, nil)
		_, err := g.Generate(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestGenerator_GenerateCompiled(t *testing.T) {
	transport := &mockTransport{}
	g, _ := NewGenerator(transport, nil)

	compiled := domain.CompiledPrompt{Text: "edited DNA prompt"}
	res, err := g.GenerateCompiled(context.Background(), compiled, domain.AspectPortrait)
	require.NoError(t, err)

	assert.Equal(t, "edited DNA prompt", res.PromptText)
	assert.Equal(t, "data:image/png;base64,ZmFrZQ==", res.ImageURL)
	call := transport.lastCall(t)
	require.Len(t, call.contents[0].Parts, 1)
	assert.Equal(t, "9:16", call.config.ImageConfig.AspectRatio)
}

func TestParseToResponse(t *testing.T) {
	t.Run("最初の画像を返す", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "here you go"},
					{InlineData: &genai.Blob{MIMEType: "image/webp", Data: []byte("first")}},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("second")}},
				}},
			}},
		}
		out, err := parseToResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "image/webp", out.MimeType)
		assert.Equal(t, []byte("first"), out.Data)
	})

	t.Run("MIMEがなければPNG", func(t *testing.T) {
		out, err := parseToResponse(imageResponse("", []byte("x")))
		require.NoError(t, err)
		assert.Equal(t, "image/png", out.MimeType)
	})

	t.Run("二番目以降の候補は見ない", func(t *testing.T) {
		resp := textResponse("no image", genai.FinishReasonStop)
		resp.Candidates = append(resp.Candidates, imageResponse("image/png", []byte("x")).Candidates[0])
		_, err := parseToResponse(resp)
		assert.Error(t, err)
	})

	t.Run("候補なし", func(t *testing.T) {
		_, err := parseToResponse(nil)
		assert.Error(t, err)
		_, err = parseToResponse(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("STOP は終了理由を含めない", func(t *testing.T) {
		_, err := parseToResponse(textResponse("text only", genai.FinishReasonStop))
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "finish_reason")
	})
}

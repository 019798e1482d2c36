// Command example はリクエストJSONから画像を1枚生成し、ファイルに保存するサンプルです。
//
//	go run ./cmd/example -request request.json -out poster.png -record poster.json
//	go run ./cmd/example -batch -request requests.json -out poster.png
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/shouni/gemini-livery-kit/pkg/adapters"
	"github.com/shouni/gemini-livery-kit/pkg/config"
	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"github.com/shouni/gemini-livery-kit/pkg/generator"
	"github.com/shouni/gemini-livery-kit/pkg/imgutil"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

func main() {
	requestPath := flag.String("request", "-", "リクエストJSONのパス (- で標準入力)")
	outPath := flag.String("out", "output.png", "生成画像の保存先")
	recordPath := flag.String("record", "", "AssetRecord(JSON)の保存先 (空なら保存しない)")
	extractStyle := flag.Bool("extract-style", true, "STYLE_TRANSFER でスタイル文が空の場合に参照画像から抽出する")
	batch := flag.Bool("batch", false, "リクエストJSONの配列を BATCH_CONCURRENCY 件ずつ並行生成する (出力は -out に連番を付けたパス)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runFn := run
	if *batch {
		runFn = runBatch
	}
	if err := runFn(ctx, cfg, *requestPath, *outPath, *recordPath, *extractStyle); err != nil {
		slog.Error("生成に失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, requestPath, outPath, recordPath string, extractStyle bool) error {
	raw, err := readRequest(requestPath)
	if err != nil {
		return err
	}
	req, err := decodeValid(raw)
	if err != nil {
		return err
	}

	models, err := adapters.NewGenAIModels(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	loader := newLoader(cfg)

	if extractStyle {
		if req, err = withExtractedStyle(ctx, cfg, models, loader, req); err != nil {
			return err
		}
	}

	gen, err := newGenerator(cfg, models, loader)
	if err != nil {
		return err
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	return save(ctx, req, *result, outPath, recordPath)
}

// runBatch はリクエストの配列を並行生成します。1件の失敗は他の結果に影響しません。
func runBatch(ctx context.Context, cfg config.Config, requestPath, outPath, recordPath string, extractStyle bool) error {
	raw, err := readRequest(requestPath)
	if err != nil {
		return err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("バッチリクエストはJSON配列である必要があります: %w", err)
	}
	reqs := make([]domain.DesignRequest, len(items))
	for i, item := range items {
		if reqs[i], err = decodeValid(item); err != nil {
			return fmt.Errorf("リクエスト[%d]: %w", i, err)
		}
	}

	models, err := adapters.NewGenAIModels(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	loader := newLoader(cfg)

	if extractStyle {
		for i := range reqs {
			if reqs[i], err = withExtractedStyle(ctx, cfg, models, loader, reqs[i]); err != nil {
				return fmt.Errorf("リクエスト[%d]: %w", i, err)
			}
		}
	}

	gen, err := newGenerator(cfg, models, loader)
	if err != nil {
		return err
	}

	var failed int
	for _, item := range gen.GenerateBatch(ctx, reqs, cfg.BatchConcurrency) {
		if item.Err != nil {
			failed++
			slog.ErrorContext(ctx, "バッチ生成に失敗しました", "index", item.Index, "error", item.Err)
			continue
		}
		record := ""
		if recordPath != "" {
			record = numbered(recordPath, item.Index)
		}
		if err := save(ctx, reqs[item.Index], *item.Result, numbered(outPath, item.Index), record); err != nil {
			failed++
			slog.ErrorContext(ctx, "バッチ結果の保存に失敗しました", "index", item.Index, "error", err)
		}
	}
	slog.InfoContext(ctx, "バッチ生成が完了しました", "total", len(reqs), "failed", failed, "concurrency", cfg.BatchConcurrency)
	if failed > 0 {
		return fmt.Errorf("%d/%d 件の生成に失敗しました", failed, len(reqs))
	}
	return nil
}

func decodeValid(raw []byte) (domain.DesignRequest, error) {
	req, err := domain.DecodeRequest(raw)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

// newLoader は http(s) 取得に go-http-kit のクライアントを使うローダーを作ります。
func newLoader(cfg config.Config) *generator.ImageLoader {
	return generator.NewImageLoader(httpkit.New(cfg.RequestTimeout), nil, cfg.AllowLocalFiles)
}

func newGenerator(cfg config.Config, models generator.ContentGenerator, loader generator.ImageResolver) (*generator.Generator, error) {
	return generator.NewGenerator(models, loader,
		generator.WithModel(cfg.ImageModel),
		generator.WithImageSize(cfg.ImageSize),
		generator.WithTimeout(cfg.RequestTimeout),
	)
}

// withExtractedStyle は STYLE_TRANSFER でスタイル文が空の場合に参照画像からスタイルDNAを補います。
func withExtractedStyle(ctx context.Context, cfg config.Config, models generator.ContentGenerator, loader generator.ImageResolver, req domain.DesignRequest) (domain.DesignRequest, error) {
	art, ok := domain.Normalize(req).(domain.ArtRequest)
	if !ok || art.Style != domain.StyleTransfer || art.StyleText != "" {
		return req, nil
	}
	extractor, err := generator.NewStyleExtractor(models, loader, cfg.AnalysisModel, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	dna, err := extractor.Extract(ctx, art.StyleRef, cfg.StyleLanguage)
	if err != nil {
		return nil, fmt.Errorf("スタイルDNAの抽出に失敗しました: %w", err)
	}
	slog.InfoContext(ctx, "スタイルDNAを抽出しました", "style_dna", dna)
	art.StyleText = dna
	return art, nil
}

func save(ctx context.Context, req domain.DesignRequest, result domain.GenerationResult, outPath, recordPath string) error {
	_, data, err := imgutil.ParseDataURI(result.ImageURL)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	slog.InfoContext(ctx, "画像を保存しました", "path", outPath, "bytes", len(data))

	if recordPath == "" {
		return nil
	}
	record, err := domain.NewAssetRecord(req, result, time.Now())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(recordPath, out, 0o644); err != nil {
		return fmt.Errorf("レコードの保存に失敗しました: %w", err)
	}
	slog.InfoContext(ctx, "レコードを保存しました", "path", recordPath, "id", record.ID, "type", record.Type)
	return nil
}

// numbered は poster.png を poster_003.png のような連番付きパスにします。
func numbered(path string, index int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), index, ext)
}

func readRequest(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

package generator

import (
	"context"

	"github.com/shouni/gemini-livery-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// GenerateBatch は独立したリクエストを並行に生成し、入力と同じ順序で結果を返します。
// 同時実行数は limit までです (0 以下は無制限)。1件の失敗が他の生成を止めることはありません。
func (g *Generator) GenerateBatch(ctx context.Context, reqs []domain.DesignRequest, limit int) []BatchItem {
	items := make([]BatchItem, len(reqs))

	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, req := range reqs {
		eg.Go(func() error {
			res, err := g.Generate(ctx, req)
			items[i] = BatchItem{Index: i, Result: res, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return items
}

package classify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/utils"
)

// ClassifyBatch annotates a batch of posts with up to workers
// goroutines. Posts are independent, and the scorer cache is
// mutex-guarded, so parallel classification is safe; results come back
// in input order so downstream aggregation stays reproducible.
func (c *Classifier) ClassifyBatch(ctx context.Context, posts []models.RawPost, workers int) ([]models.AnnotatedPost, error) {
	if workers < 1 {
		workers = 1
	}

	buffer := utils.NewIndexedBuffer[models.AnnotatedPost](len(posts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if annotated, ok := c.Classify(post); ok {
				buffer.Set(i, annotated)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buffer.Collect(), nil
}

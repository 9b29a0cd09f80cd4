// Package processor runs a search task over file contents and returns the matched lines with their hash sum
package processor

import (
	"context"
	"runtime"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

const DefaultChunkSize = 1 << 16

// Processor scans contents sequentially, or in chunks of ChunkSize lines on up to Workers goroutines.
// Zero values select DefaultChunkSize and runtime.GOMAXPROCS(0).
type Processor struct {
	Workers   int
	ChunkSize int
}

func (p Processor) ProcessInput(ctx context.Context, task *model.Task) (*model.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := matcher.Lines(task.Contents)

	var output []string
	switch workers, chunk := p.workers(), p.chunkSize(); {
	case workers > 1 && len(lines) > chunk:
		var err error
		output, err = filterParallel(ctx, lines, task.Config, workers, chunk)
		if err != nil {
			return nil, err
		}
	default:
		output = matcher.FilterLines(lines, task.Config.Query, task.Config.CaseSensitive)
	}

	if !task.Config.CaseSensitive {
		output = matcher.OrNoMatches(output)
	}

	result := model.Result{
		TaskID: task.TaskID,
		Output: output,
	}
	result.HashSum = hasher(result.Output)

	return &result, nil
}

func (p Processor) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p Processor) chunkSize() int {
	if p.ChunkSize > 0 {
		return p.ChunkSize
	}
	return DefaultChunkSize
}

// filterParallel keeps chunk results in chunk order, so the merged output follows the file order
func filterParallel(ctx context.Context, lines []string, cfg model.Config, workers, chunk int) ([]string, error) {
	parts := make([][]string, (len(lines)+chunk-1)/chunk)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range parts {
		i := i
		from := i * chunk
		to := min(from+chunk, len(lines))
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			parts[i] = matcher.FilterLines(lines[from:to], cfg.Query, cfg.CaseSensitive)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	result := make([]string, 0, total)
	for _, part := range parts {
		result = append(result, part...)
	}
	return result, nil
}

func hasher(input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}

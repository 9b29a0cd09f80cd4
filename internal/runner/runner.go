// Package runner reads the configured file, dispatches the search and prints the result
package runner

import (
	"bufio"
	"context"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/docker/distribution/uuid"
	"github.com/rs/zerolog"
)

type Runner struct {
	Processor processor.Processor
	Log       zerolog.Logger
}

// Run writes nothing to out unless the whole file was read and searched.
func (r Runner) Run(ctx context.Context, cfg model.Config, out io.Writer) error {
	// прочитать файл целиком
	contents, err := reader.ReadInput(cfg.Filename)
	if err != nil {
		return err
	}

	task := model.Task{
		TaskID:   uuid.Generate().String(),
		Config:   cfg,
		Contents: contents,
	}
	r.Log.Debug().
		Str("tid", task.TaskID).
		Str("file", cfg.Filename).
		Int("bytes", len(contents)).
		Bool("case_sensitive", cfg.CaseSensitive).
		Msg("search task created")

	result, err := r.Processor.ProcessInput(ctx, &task)
	if err != nil {
		return err
	}
	r.Log.Debug().
		Str("tid", result.TaskID).
		Int("lines", len(result.Output)).
		Uint64("hash", result.HashSum).
		Msg("search finished")

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range result.Output {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

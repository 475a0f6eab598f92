package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"coldump/readers"
	"coldump/types"
)

// Result is one file's outcome.  Exactly one of Savegame and Err is set.
type Result struct {
	Filename string
	Savegame *types.Savegame
	Err      error
}

// Decode_all decodes files in parallel, at most workers at a time.  Results are in the same order
// as files.  A broken file only affects its own result; only cancelling ctx stops the batch early,
// in which case the files not yet started get ctx's error.
func Decode_all(ctx context.Context, files []string, workers int) []Result {
	return Each(ctx, files, workers, func(sd *types.Savegame) error { return nil })
}

// Each decodes files like Decode_all and calls fn on every good savegame, from the worker
// goroutine.  An error from fn becomes that file's error.
func Each(ctx context.Context, files []string, workers int, fn func(sd *types.Savegame) error) []Result {
	out := make([]Result, len(files))
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, filename := range files {
		out[i].Filename = filename
		if err := ctx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			sd, err := readers.Read_file(filename)
			if err == nil {
				err = fn(sd)
			}
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Savegame = sd
			return nil
		})
	}
	g.Wait()
	return out
}

package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/collide/internal/core"
)

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

// Sweep runs a fresh instance of simulation id for every seed, at most
// workers at a time (unlimited when workers <= 0). Results are in seed
// order. The first failure cancels the remaining runs.
func (r *Runner) Sweep(ctx context.Context, id string, cfg core.RuntimeConfig, seeds []int64, ticks, workers int) ([]Summary, error) {
	results := make([]Summary, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			game, err := r.NewGame(id)
			if err != nil {
				return err
			}

			runCfg := cfg
			runCfg.Seed = seed
			sum, err := r.Run(ctx, game, runCfg, ticks)
			if err != nil {
				return err
			}
			results[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger().Info("sweep finished", "sim", id, "runs", len(results))
	return results, nil
}

// VerifyDeterminism runs simulation id twice with the same configuration
// and compares the final fingerprints.
func (r *Runner) VerifyDeterminism(ctx context.Context, id string, cfg core.RuntimeConfig, ticks int) (Summary, error) {
	var runs [2]Summary
	for i := range runs {
		game, err := r.NewGame(id)
		if err != nil {
			return Summary{}, err
		}
		runs[i], err = r.Run(ctx, game, cfg, ticks)
		if err != nil {
			return Summary{}, err
		}
	}

	first, second := runs[0], runs[1]
	if first.Fingerprint != second.Fingerprint || first.Ticks != second.Ticks {
		return first, fmt.Errorf("sim: %s seed %d: %w: fingerprint %016x after %d ticks, then %016x after %d ticks",
			id, cfg.Seed, ErrNonDeterministic, first.Fingerprint, first.Ticks, second.Fingerprint, second.Ticks)
	}
	return first, nil
}

// Best returns the summary with the highest score; ties go to the earlier
// entry. ok is false for an empty slice.
func Best(results []Summary) (best Summary, ok bool) {
	for i, s := range results {
		if i == 0 || s.Score > best.Score {
			best = s
		}
	}
	return best, len(results) > 0
}

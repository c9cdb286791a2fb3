package blend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/yyyoichi/poisson_blend/internal/mask"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
	"github.com/yyyoichi/poisson_blend/internal/solver"
	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrSolverFailure    = errors.New("solver failure")
)

type Params struct {
	Mask, Source, Target *pixel.Image
	MX, MY               int
	Threshold            float32
	Transfer             transfer.Func
	// Serial solves the channels one after another instead of concurrently.
	Serial bool
	Logger *slog.Logger
}

// Run blends p.Source into p.Target through p.Mask and returns the result
// as interleaved RGBA8 with the target's dimensions.
//
// Process:
//  1. Validates the placement.
//  2. Classifies mask pixels and assigns unknown ids.
//  3. Assembles and factorizes the Laplacian once.
//  4. Assembles and solves one right-hand side per colour channel.
//  5. Writes the solutions over the encoded target.
func Run(ctx context.Context, p Params) ([]byte, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if p.Mask.Empty() || p.Target.Empty() || p.Source == nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidPlacement, errors.New("missing mask, source or target"))
	}
	if err := Validate(p.MX, p.MY, p.Mask.Width(), p.Mask.Height(), p.Target.Width(), p.Target.Height()); err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidPlacement, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		cls = mask.NewClassifier(p.Mask, p.Threshold)
		idx = mask.NewIndex(cls)
	)
	m, err := AssembleMatrix(idx)
	if err != nil {
		return nil, err
	}
	chol := solver.New()
	if err := chol.Factorize(m); err != nil {
		logger.Warn("factorization failed", "unknowns", idx.Len(), "err", err)
		return nil, fmt.Errorf("%w:%w", ErrSolverFailure, err)
	}
	logger.Debug("assembled system",
		"unknowns", idx.Len(), "nnz", m.NNZ(), "band", chol.Bandwidth())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		solutions [3][]float64
		errs      [3]error
	)
	solve := func(c int) {
		b := AssembleRHS(c, idx, p.Source, p.Target, p.MX, p.MY)
		solutions[c], errs[c] = chol.Solve(b)
		if errs[c] != nil {
			errs[c] = fmt.Errorf("channel %d: %w", c, errs[c])
		}
	}
	if p.Serial || idx.Len() == 0 {
		for c := range 3 {
			solve(c)
		}
	} else {
		// The factor is only read during Solve, so the channels share it.
		var wg sync.WaitGroup
		wg.Add(3)
		for c := range 3 {
			go func(c int) {
				defer wg.Done()
				solve(c)
			}(c)
		}
		wg.Wait()
	}
	if err := errors.Join(errs[:]...); err != nil {
		logger.Warn("solve failed", "unknowns", idx.Len(), "err", err)
		return nil, fmt.Errorf("%w:%w", ErrSolverFailure, err)
	}
	logger.Debug("solved channels", "unknowns", idx.Len(), "serial", p.Serial)

	return Composite(p.Target, idx, solutions, p.MX, p.MY, p.Transfer), nil
}

// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparsecalc/config"
	"github.com/katalvlaran/sparsecalc/logging"
	"github.com/katalvlaran/sparsecalc/sparse"
)

// Request is one operation over two operand files.
type Request struct {
	Op     Operation
	Left   string // path of the left operand
	Right  string // path of the right operand
	Output string // result path; "" derives it from the config
}

// Runner executes requests with a fixed configuration.
type Runner struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRunner returns a Runner logging under the "calc" component.
// A nil cfg means config.Default().
func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{Config: cfg, Logger: logging.GetLogger("calc")}
}

// Run reads both operands, applies the operation and writes the result.
// It returns the path written. Nothing is written on error.
//
// Implementation:
//   - Stage 1: check the operation, resolve the output path and the multiplication kernel.
//   - Stage 2: read and parse both operands; with parse.strict, reject
//     entries outside the declared shape.
//   - Stage 3: apply the operation and write the result.
func (r *Runner) Run(req Request) (string, error) {
	cfg := r.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if _, err := ParseOperation(string(req.Op)); err != nil {
		return "", err
	}
	done := logging.LogOperationStart(r.Logger, req.Op.String())
	defer done()

	out := req.Output
	if out == "" {
		out = ResultPath(cfg.Output.Dir, cfg.Output.Pattern, req.Op)
	}
	alg, err := sparse.ParseAlgorithm(cfg.Multiply.Algorithm)
	if err != nil {
		return "", err
	}

	left, err := r.load(req.Left, cfg.Parse.Strict)
	if err != nil {
		return "", err
	}
	right, err := r.load(req.Right, cfg.Parse.Strict)
	if err != nil {
		return "", err
	}

	res, err := req.Op.Apply(left, right, alg)
	if err != nil {
		r.Logger.Debug().Err(err).Str("op", req.Op.String()).Msg("operation failed")
		return "", err
	}
	r.Logger.Info().
		Str("op", req.Op.String()).
		Str("shape", res.Shape().String()).
		Int("nnz", res.NNZ()).
		Msg("operation complete")

	if err := WriteResult(out, res, cfg.Output.Sorted); err != nil {
		return "", err
	}
	r.Logger.Info().Str("path", out).Bool("sorted", cfg.Output.Sorted).Msg("result written")

	return out, nil
}

// load reads one operand and applies the strict bounds check when asked.
func (r *Runner) load(path string, strict bool) (*sparse.Matrix, error) {
	m, err := ReadMatrixFile(path)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug().
		Str("path", path).
		Str("shape", m.Shape().String()).
		Int("nnz", m.NNZ()).
		Msg("matrix loaded")

	if strict {
		if err := sparse.ValidateBounds(m); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return m, nil
}

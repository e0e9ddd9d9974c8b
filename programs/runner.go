// SPDX-License-Identifier: MIT

package programs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner executes registered programs against one set of inputs.
// A Runner is safe for concurrent use; it holds no mutable state.
type Runner struct {
	registry *Registry
	inputs   Inputs
	logger   *zap.Logger
	runID    string
	workers  int
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithRegistry replaces the builtin registry. Panics on nil.
func WithRegistry(r *Registry) RunnerOption {
	if r == nil {
		panic("programs: WithRegistry(nil)")
	}
	return func(rn *Runner) { rn.registry = r }
}

// WithInputs replaces DefaultInputs.
func WithInputs(in Inputs) RunnerOption {
	return func(rn *Runner) { rn.inputs = in }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("programs: WithLogger(nil)")
	}
	return func(rn *Runner) { rn.logger = l }
}

// WithRunID fixes the run identifier instead of generating a UUID.
func WithRunID(id string) RunnerOption {
	return func(rn *Runner) { rn.runID = id }
}

// WithWorkers caps RunAll concurrency. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) RunnerOption {
	return func(rn *Runner) { rn.workers = n }
}

// NewRunner returns a Runner over the builtin registry and default inputs,
// logging nowhere, with a fresh random run id.
func NewRunner(opts ...RunnerOption) *Runner {
	rn := &Runner{
		registry: Default(),
		inputs:   DefaultInputs(),
		logger:   zap.NewNop(),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rn)
		}
	}
	if rn.workers <= 0 {
		rn.workers = runtime.GOMAXPROCS(0)
	}
	rn.logger = rn.logger.With(zap.String("run_id", rn.runID))

	return rn
}

// RunID returns the identifier attached to every log entry of this Runner.
func (rn *Runner) RunID() string { return rn.runID }

// Registry returns the registry the Runner resolves names against.
func (rn *Runner) Registry() *Registry { return rn.registry }

// Run resolves name, checks the inputs that program reads and executes it,
// writing its line to w.
func (rn *Runner) Run(ctx context.Context, name string, w io.Writer) error {
	p, err := rn.registry.Lookup(name)
	if err != nil {
		return err
	}
	if err := rn.check(p); err != nil {
		return err
	}

	return rn.exec(ctx, p, w)
}

// RunAll executes the named programs concurrently and writes their output
// to w in the order the names were given. An empty names list runs every
// registered program.
//
// All names are resolved and their inputs checked before anything runs.
// On the first failure the remaining programs are cancelled and nothing is
// written.
func (rn *Runner) RunAll(ctx context.Context, names []string, w io.Writer) error {
	progs := rn.registry.Programs()
	if len(names) > 0 {
		progs = make([]Program, 0, len(names))
		for _, name := range names {
			p, err := rn.registry.Lookup(name)
			if err != nil {
				return err
			}
			progs = append(progs, p)
		}
	}

	if err := rn.check(progs...); err != nil {
		return err
	}

	bufs := make([]bytes.Buffer, len(progs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rn.workers)
	for i, p := range progs {
		g.Go(func() error {
			return rn.exec(gctx, p, &bufs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(w); err != nil {
			return fmt.Errorf("write %s output: %w", progs[i].Name, err)
		}
	}
	rn.logger.Info("Programs completed", zap.Int("count", len(progs)))

	return nil
}

// check runs the Check of every distinct program in progs against the
// Runner's inputs and combines the failures.
func (rn *Runner) check(progs ...Program) error {
	var err error
	seen := make(map[string]struct{}, len(progs))
	for _, p := range progs {
		if _, dup := seen[p.Name]; dup || p.Check == nil {
			continue
		}
		seen[p.Name] = struct{}{}
		err = multierr.Append(err, p.Check(rn.inputs))
	}

	return invalid(err)
}

// exec runs one program with logging and context checks around it.
func (rn *Runner) exec(ctx context.Context, p Program, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	log := rn.logger.With(zap.String("program", p.Name))
	log.Debug("Program started")
	start := time.Now()
	if err := p.Run(ctx, rn.inputs, w); err != nil {
		log.Error("Program failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	log.Debug("Program finished", zap.Duration("elapsed", time.Since(start)))

	return nil
}

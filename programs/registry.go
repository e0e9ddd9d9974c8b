// SPDX-License-Identifier: MIT

package programs

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnknownProgram indicates a name that matches no program or alias.
	ErrUnknownProgram = errors.New("programs: unknown program")

	// ErrDuplicateProgram indicates two programs claim the same name or alias.
	ErrDuplicateProgram = errors.New("programs: duplicate program name")
)

// RunFunc computes a program's result from in and writes its single line to w.
type RunFunc func(ctx context.Context, in Inputs, w io.Writer) error

// CheckFunc reports problems in the Inputs sections a program reads.
type CheckFunc func(in Inputs) error

// Program is one reference program. Check may be nil when every value of
// the program's inputs is acceptable.
type Program struct {
	Name        string
	Aliases     []string
	Description string
	Check       CheckFunc
	Run         RunFunc
}

// Registry is an ordered, immutable set of programs addressable by name or alias.
type Registry struct {
	programs []Program
	index    map[string]int // name or alias → position in programs
}

// NewRegistry indexes progs in the given order.
//
// Errors:
//   - ErrDuplicateProgram if a name or alias repeats.
//   - a plain error if a program has no name or no Run function.
func NewRegistry(progs ...Program) (*Registry, error) {
	r := &Registry{
		programs: make([]Program, 0, len(progs)),
		index:    make(map[string]int, len(progs)),
	}
	for _, p := range progs {
		if p.Name == "" || p.Run == nil {
			return nil, fmt.Errorf("programs: program %q needs a name and a Run function", p.Name)
		}
		pos := len(r.programs)
		for _, key := range append([]string{p.Name}, p.Aliases...) {
			if _, dup := r.index[key]; dup {
				return nil, fmt.Errorf("%q: %w", key, ErrDuplicateProgram)
			}
			r.index[key] = pos
		}
		r.programs = append(r.programs, p)
	}

	return r, nil
}

// Lookup resolves a program by its name or any alias.
func (r *Registry) Lookup(name string) (Program, error) {
	pos, ok := r.index[name]
	if !ok {
		return Program{}, fmt.Errorf("%q: %w", name, ErrUnknownProgram)
	}

	return r.programs[pos], nil
}

// Programs returns the programs in registration order.
func (r *Registry) Programs() []Program {
	out := make([]Program, len(r.programs))
	copy(out, r.programs)

	return out
}

// Names returns the canonical program names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.programs))
	for i, p := range r.programs {
		out[i] = p.Name
	}

	return out
}

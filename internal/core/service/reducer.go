package service

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ak7sky/net-reduce/internal/core/model"
)

var ErrInternalFault = errors.New("internal fault")

var (
	errBuildTrie  = "failed to build"
	errCheckEntry = "failed to check entry"
)

// Reducer removes entries covered by a broader network entry of the same
// family, and repeated entries. Survivors keep their input order.
type Reducer struct {
	workers int
}

// NewReducer returns a Reducer that checks containment on the given number
// of workers. workers <= 0 means GOMAXPROCS.
func NewReducer(workers int) *Reducer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Reducer{workers: workers}
}

func (reducer *Reducer) Reduce(entries []*model.Prefix) ([]*model.Prefix, error) {
	v4Nets, v6Nets := classify(entries)

	tries, err := buildTries(v4Nets, v6Nets)
	if err != nil {
		return nil, err
	}

	redundant := make([]bool, len(entries))
	markDuplicates(entries, redundant)
	if err = checkCoverage(entries, redundant, tries, reducer.workers); err != nil {
		return nil, err
	}

	kept := make([]*model.Prefix, 0, len(entries))
	for i, entry := range entries {
		if !redundant[i] {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}

// classify returns the network entries of each family. Host entries only
// take part in the check phase.
func classify(entries []*model.Prefix) (v4Nets, v6Nets []*model.Prefix) {
	for _, entry := range entries {
		if entry.IsHost() {
			continue
		}
		switch entry.Family {
		case model.IPv4:
			v4Nets = append(v4Nets, entry)
		case model.IPv6:
			v6Nets = append(v6Nets, entry)
		}
	}
	return v4Nets, v6Nets
}

func recoverFault(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrInternalFault, r)
	}
}

package service

import (
	"fmt"

	"github.com/ak7sky/net-reduce/internal/core/model"
	"github.com/ak7sky/net-reduce/internal/core/trie"
	"golang.org/x/sync/errgroup"
)

type familyTries struct {
	v4, v6 *trie.Trie
}

func (tries familyTries) of(family model.Family) *trie.Trie {
	if family == model.IPv4 {
		return tries.v4
	}
	return tries.v6
}

// buildTries builds the IPv4 and IPv6 tries in parallel. The two builds
// share nothing.
func buildTries(v4Nets, v6Nets []*model.Prefix) (familyTries, error) {
	var (
		tries familyTries
		group errgroup.Group
	)

	group.Go(func() (err error) {
		tries.v4, err = buildTrie(model.IPv4, v4Nets)
		return err
	})
	group.Go(func() (err error) {
		tries.v6, err = buildTrie(model.IPv6, v6Nets)
		return err
	})

	if err := group.Wait(); err != nil {
		return familyTries{}, err
	}
	return tries, nil
}

func buildTrie(family model.Family, nets []*model.Prefix) (built *trie.Trie, err error) {
	defer recoverFault(&err)

	builder := trie.NewBuilder(family)
	for _, net := range nets {
		if err = builder.Insert(net); err != nil {
			return nil, fmt.Errorf("%w: %s %s trie: %w", ErrInternalFault, errBuildTrie, family, err)
		}
	}
	return builder.Freeze(), nil
}

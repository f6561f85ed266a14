// Package trie holds the per-family binary prefix tree used to find
// covering prefixes.
//
// A tree is filled through a Builder and then frozen into a Trie, which
// has no mutating methods and is safe for concurrent readers.
package trie

import (
	"errors"
	"fmt"

	"github.com/ak7sky/net-reduce/internal/core/model"
)

var (
	ErrFamilyMismatch = errors.New("address family mismatch")
	ErrHostPrefix     = errors.New("host prefix can not be inserted")
	ErrFrozen         = errors.New("builder is frozen")
)

type node struct {
	children [2]*node
	terminal bool
}

type Builder struct {
	family model.Family
	root   *node
	size   int
	frozen bool
}

func NewBuilder(family model.Family) *Builder {
	return &Builder{family: family, root: &node{}}
}

// Insert marks the node at depth prefix.MaskLen along the prefix address
// as terminal, creating missing nodes on the way.
func (builder *Builder) Insert(prefix *model.Prefix) error {
	if builder.frozen {
		return ErrFrozen
	}
	if prefix.Family != builder.family {
		return fmt.Errorf("%w: %s prefix %s into %s trie", ErrFamilyMismatch, prefix.Family, prefix, builder.family)
	}
	if prefix.IsHost() {
		return fmt.Errorf("%w: %s", ErrHostPrefix, prefix)
	}

	current := builder.root
	for depth := uint8(0); depth < prefix.MaskLen; depth++ {
		bit := prefix.Addr.Bit(depth)
		if current.children[bit] == nil {
			current.children[bit] = &node{}
		}
		current = current.children[bit]
	}

	if !current.terminal {
		current.terminal = true
		builder.size++
	}
	return nil
}

// Freeze ends the build phase. The builder rejects inserts afterwards.
func (builder *Builder) Freeze() *Trie {
	builder.frozen = true
	return &Trie{family: builder.family, root: builder.root, size: builder.size}
}

type Trie struct {
	family model.Family
	root   *node
	size   int
}

// Len returns the number of distinct prefixes stored.
func (trie *Trie) Len() int {
	return trie.size
}

// HasCoveringAncestor reports whether a stored prefix strictly shorter than
// prefix contains it. The node at depth prefix.MaskLen is never consulted,
// so a prefix is not covered by itself.
func (trie *Trie) HasCoveringAncestor(prefix *model.Prefix) (bool, error) {
	if prefix.Family != trie.family {
		return false, fmt.Errorf("%w: %s prefix %s against %s trie", ErrFamilyMismatch, prefix.Family, prefix, trie.family)
	}

	current := trie.root
	for depth := uint8(0); depth < prefix.MaskLen; depth++ {
		if current.terminal {
			return true, nil
		}
		current = current.children[prefix.Addr.Bit(depth)]
		if current == nil {
			return false, nil
		}
	}
	return false, nil
}

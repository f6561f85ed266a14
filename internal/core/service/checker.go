package service

import (
	"fmt"

	"github.com/ak7sky/net-reduce/internal/core/model"
	"golang.org/x/sync/errgroup"
)

// markDuplicates flags every entry equal to an earlier one. It runs before
// the parallel check so workers never share a seen-set.
func markDuplicates(entries []*model.Prefix, redundant []bool) {
	seen := make(map[model.Key]struct{}, len(entries))
	for i, entry := range entries {
		key := entry.Key()
		if _, found := seen[key]; found {
			redundant[i] = true
			continue
		}
		seen[key] = struct{}{}
	}
}

// checkCoverage splits entries into contiguous chunks, one per worker, and
// marks entries covered by a shorter network entry of the same family.
// Each worker writes only to its own range of redundant.
func checkCoverage(entries []*model.Prefix, redundant []bool, tries familyTries, workers int) error {
	if len(entries) == 0 {
		return nil
	}
	if workers > len(entries) {
		workers = len(entries)
	}
	chunkSize := (len(entries) + workers - 1) / workers

	var group errgroup.Group
	for start := 0; start < len(entries); start += chunkSize {
		end := min(start+chunkSize, len(entries))
		group.Go(func() error {
			return checkChunk(entries[start:end], redundant[start:end], tries)
		})
	}
	return group.Wait()
}

func checkChunk(entries []*model.Prefix, redundant []bool, tries familyTries) (err error) {
	defer recoverFault(&err)

	for i, entry := range entries {
		if redundant[i] {
			continue
		}
		covered, errCheck := tries.of(entry.Family).HasCoveringAncestor(entry)
		if errCheck != nil {
			return fmt.Errorf("%w: %s '%s': %w", ErrInternalFault, errCheckEntry, entry.Text, errCheck)
		}
		redundant[i] = covered
	}
	return nil
}

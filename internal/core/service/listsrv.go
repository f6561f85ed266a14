package service

import (
	"errors"
	"fmt"

	"github.com/ak7sky/net-reduce/internal/core"
	"github.com/ak7sky/net-reduce/internal/core/model"
	"github.com/ak7sky/net-reduce/internal/parser"
)

var (
	errReduceLines    = "failed to reduce lines"
	errAddToList      = "failed to add prefixes to"
	errRemoveFromList = "failed to remove prefixes from"
	errReduceList     = "failed to reduce"
)

// ListService reduces ad hoc prefix sets and named lists kept in storage.
type ListService struct {
	listStorage core.ListStorage
	reducer     core.PrefixReducer
}

func NewListService(listStorage core.ListStorage, reducer core.PrefixReducer) *ListService {
	return &ListService{
		listStorage: listStorage,
		reducer:     reducer,
	}
}

// Reduce parses lines and returns the texts of the surviving entries.
// Lines that do not parse are returned in skipped.
func (listSrv *ListService) Reduce(lines []string) ([]string, []string, error) {
	prefixes, failures := parser.ParseLines(lines)
	skipped := make([]string, 0, len(failures))
	for _, failure := range failures {
		skipped = append(skipped, failure.Text)
	}

	kept, err := listSrv.reducer.Reduce(prefixes)
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", errReduceLines, err)
	}
	return texts(kept), skipped, nil
}

func (listSrv *ListService) AddToList(name string, lines []string) error {
	prefixes, err := parseStrict(lines)
	if err != nil {
		return fmt.Errorf("%s '%s': %w", errAddToList, name, err)
	}

	if err = listSrv.listStorage.Save(name, prefixes); err != nil {
		return fmt.Errorf("%s '%s': %w", errAddToList, name, err)
	}
	return nil
}

func (listSrv *ListService) RemoveFromList(name string, lines []string) error {
	prefixes, err := parseStrict(lines)
	if err != nil {
		return fmt.Errorf("%s '%s': %w", errRemoveFromList, name, err)
	}

	for _, prefix := range prefixes {
		if err = listSrv.listStorage.Delete(name, prefix.Key()); err != nil {
			return fmt.Errorf("%s '%s': %w", errRemoveFromList, name, err)
		}
	}
	return nil
}

// ReducedList returns the reduced form of the named list. An unknown list
// reduces to nothing.
func (listSrv *ListService) ReducedList(name string) ([]string, error) {
	entries, err := listSrv.listStorage.GetList(name)
	if err != nil {
		return nil, fmt.Errorf("%s '%s': %w", errReduceList, name, err)
	}

	kept, err := listSrv.reducer.Reduce(entries)
	if err != nil {
		return nil, fmt.Errorf("%s '%s': %w", errReduceList, name, err)
	}
	return texts(kept), nil
}

// parseStrict fails on the first line that does not parse.
func parseStrict(lines []string) ([]*model.Prefix, error) {
	prefixes, failures := parser.ParseLines(lines)
	if len(failures) > 0 {
		failure := failures[0]
		return nil, fmt.Errorf("%w: line %d %q", parser.ErrMalformedPrefix, failure.LineNum, failure.Text)
	}
	return prefixes, nil
}

func texts(prefixes []*model.Prefix) []string {
	out := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		out = append(out, prefix.Text)
	}
	return out
}

// IsMalformed reports whether err was caused by unparsable input.
func IsMalformed(err error) bool {
	return errors.Is(err, parser.ErrMalformedPrefix)
}

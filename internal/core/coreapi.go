package core

import "github.com/ak7sky/net-reduce/internal/core/model"

type PrefixReducer interface {
	Reduce(entries []*model.Prefix) ([]*model.Prefix, error)
}

type PrefixListService interface {
	Reduce(lines []string) (kept []string, skipped []string, err error)
	AddToList(name string, lines []string) error
	RemoveFromList(name string, lines []string) error
	ReducedList(name string) ([]string, error)
}

type ListStorage interface {
	Save(name string, entries []*model.Prefix) error
	GetList(name string) ([]*model.Prefix, error)
	Delete(name string, key model.Key) error
}

package mem

import (
	"sync"

	"github.com/ak7sky/net-reduce/internal/core/model"
)

// ListMemStorage keeps named prefix lists in memory, in insertion order.
type ListMemStorage struct {
	lists map[string][]*model.Prefix
	mtx   *sync.RWMutex
}

func NewListMemStorage() *ListMemStorage {
	return &ListMemStorage{
		lists: map[string][]*model.Prefix{},
		mtx:   &sync.RWMutex{},
	}
}

func (listStorage *ListMemStorage) Save(name string, entries []*model.Prefix) error {
	listStorage.mtx.Lock()
	listStorage.lists[name] = append(listStorage.lists[name], entries...)
	listStorage.mtx.Unlock()
	return nil
}

// GetList returns a copy of the named list, nil if the list is unknown.
func (listStorage *ListMemStorage) GetList(name string) ([]*model.Prefix, error) {
	listStorage.mtx.RLock()
	defer listStorage.mtx.RUnlock()

	entries, found := listStorage.lists[name]
	if !found {
		return nil, nil
	}
	list := make([]*model.Prefix, len(entries))
	copy(list, entries)
	return list, nil
}

// Delete removes every entry of the named list equal to key. A list left
// empty is dropped.
func (listStorage *ListMemStorage) Delete(name string, key model.Key) error {
	listStorage.mtx.Lock()
	defer listStorage.mtx.Unlock()

	entries, found := listStorage.lists[name]
	if !found {
		return nil
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Key() != key {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		delete(listStorage.lists, name)
		return nil
	}
	clear(entries[len(kept):])
	listStorage.lists[name] = kept
	return nil
}

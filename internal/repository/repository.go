// Package repository adds identity semantics on top of the flat-file
// store: one repository per entity kind, each owning its collection
// for the process lifetime while the store owns the durable copy.
package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/store"
)

// records is the generic read-modify-write core shared by every
// repository. keyOf extracts the identity used by Upsert; the dedup
// rule everywhere is identity-keyed last-write-wins, never merge.
type records[T any] struct {
	coll  *store.Collection[T]
	keyOf func(T) string
}

func newRecords[T any](dir, name string, keyOf func(T) string) *records[T] {
	return &records[T]{
		coll:  store.NewCollection[T](dir, name),
		keyOf: keyOf,
	}
}

// all loads the full collection. Read failures surface to the caller;
// the returned slice is empty in that case, never stale.
func (r *records[T]) all() ([]T, error) {
	return r.coll.Load()
}

// upsert removes any record with the same key, appends the new one and
// writes the collection back.
func (r *records[T]) upsert(item T) error {
	items, err := r.all()
	if err != nil {
		return err
	}
	key := r.keyOf(item)
	kept := items[:0]
	for _, it := range items {
		if r.keyOf(it) != key {
			kept = append(kept, it)
		}
	}
	kept = append(kept, item)
	return r.coll.Save(kept)
}

// append adds the record without any dedup check. Callers use it when
// uniqueness is already guaranteed, e.g. a freshly minted UUID.
func (r *records[T]) append(item T) error {
	items, err := r.all()
	if err != nil {
		return err
	}
	return r.coll.Save(append(items, item))
}

// deleteWhere removes every matching record.
func (r *records[T]) deleteWhere(match func(T) bool) error {
	items, err := r.all()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	return r.coll.Save(kept)
}

// deleteFirst removes the first matching record. Removing a record
// that does not exist is a no-op, not an error.
func (r *records[T]) deleteFirst(match func(T) bool) error {
	items, err := r.all()
	if err != nil {
		return err
	}
	for i, it := range items {
		if match(it) {
			items = append(items[:i], items[i+1:]...)
			return r.coll.Save(items)
		}
	}
	return nil
}

// find returns the first matching record, or nil when there is none.
// Absence is not an error.
func (r *records[T]) find(match func(T) bool) (*T, error) {
	items, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(items[i]) {
			return &items[i], nil
		}
	}
	return nil, nil
}

// filter returns every matching record.
func (r *records[T]) filter(match func(T) bool) ([]T, error) {
	items, err := r.all()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// clear resets the collection to empty. Used by the reset/test paths.
func (r *records[T]) clear() error {
	return r.coll.Clear()
}

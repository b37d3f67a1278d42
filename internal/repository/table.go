package repository

import (
	"sort"
	"sync"
)

// table is one in-memory collection with its own identity counter. The
// counter only moves forward, so identities are never handed out twice even
// after a delete.
type table[T any] struct {
	mu     sync.RWMutex
	lastID uint
	rows   map[uint]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]T)}
}

func (t *table[T]) insert(build func(id uint) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	row := build(t.lastID)
	t.rows[t.lastID] = row

	return row
}

// insertUnless inserts unless an existing row conflicts with the new one.
// The check and the insert happen under the same lock.
func (t *table[T]) insertUnless(conflict func(T) bool, build func(id uint) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range t.rows {
		if conflict(row) {
			var zero T
			return zero, false
		}
	}

	t.lastID++
	row := build(t.lastID)
	t.rows[t.lastID] = row

	return row, true
}

func (t *table[T]) get(id uint) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// all returns the rows in ascending identity order, i.e. insertion order.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, t.rows[id])
	}

	return rows
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, row := range t.all() {
		if match(row) {
			return row, true
		}
	}

	var zero T
	return zero, false
}

func (t *table[T]) update(id uint, change func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	row = change(row)
	t.rows[id] = row

	return row, true
}

func (t *table[T]) delete(id uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)

	return true
}

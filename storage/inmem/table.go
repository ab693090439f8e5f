package inmemdb

import "sync"

// table is an ordered collection of rows guarded by a RWMutex.
// Rows are cloned on the way in and on the way out.
type table[T any] struct {
	rows  []T
	idOf  func(T) string
	clone func(T) T
	mutex sync.RWMutex
}

func newTable[T any](idOf func(T) string, clone func(T) T, rows []T) *table[T] {
	if clone == nil {
		clone = func(row T) T { return row }
	}
	t := &table[T]{idOf: idOf, clone: clone, rows: make([]T, 0, len(rows))}
	for _, row := range rows {
		t.rows = append(t.rows, clone(row))
	}
	return t
}

func (t *table[T]) all() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	rows := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, t.clone(row))
	}
	return rows
}

func (t *table[T]) indexOf(id string) int {
	for i, row := range t.rows {
		if t.idOf(row) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) get(id string) (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return t.clone(t.rows[i]), true
	}
	var zero T
	return zero, false
}

func (t *table[T]) append(row T) T {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.rows = append(t.rows, t.clone(row))
	return row
}

func (t *table[T]) prepend(row T) T {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.rows = append([]T{t.clone(row)}, t.rows...)
	return row
}

func (t *table[T]) replace(row T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	i := t.indexOf(t.idOf(row))
	if i < 0 {
		return false
	}
	t.rows[i] = t.clone(row)
	return true
}

func (t *table[T]) remove(id string) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

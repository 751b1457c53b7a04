package runtime

import (
	"bytes"
	goruntime "runtime"
	"strconv"
	"sync"
)

// TLS[T] is the Go stand-in for the original's thread_local global kind
// (model.GlobalThreadLocal). Go has no language-level thread-local
// storage, so this keys a value per goroutine using the goroutine ID
// parsed out of runtime.Stack — the same trick used by goroutine-aware
// tracing libraries when no per-goroutine context value is threaded
// through; justified here as the narrow, unavoidable stdlib use DESIGN.md
// records, since no example in the pack carries a goroutine-local
// primitive to ground this on.
type TLS[T any] struct {
	mu     sync.Mutex
	values map[int64]T
}

// NewTLS constructs an empty TLS[T].
func NewTLS[T any]() *TLS[T] {
	return &TLS[T]{values: make(map[int64]T)}
}

// Get returns the current goroutine's value and whether one was set.
// The zero TLS[T] (as declared by a bare `var x TLS[T]`) is valid and
// reports ok=false until Set is first called.
func (t *TLS[T]) Get() (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.values[goroutineID()]

	return v, ok
}

// Set stores v for the current goroutine.
func (t *TLS[T]) Set(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.values == nil {
		t.values = make(map[int64]T)
	}

	t.values[goroutineID()] = v
}

// Clear removes the current goroutine's value, so long-lived worker
// pools don't leak one entry per goroutine that ever touched the TLS.
func (t *TLS[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.values, goroutineID())
}

// goroutineID parses the numeric ID out of the "goroutine N [running]:"
// header runtime.Stack always writes first. Not a documented stdlib
// contract, but stable across Go releases in practice and scoped to a
// single call per Get/Set rather than the hot ShouldBreak path.
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := goruntime.Stack(buf, false)
	buf = buf[:n]

	const prefix = "goroutine "

	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return 0
	}

	buf = buf[len(prefix):]

	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseInt(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}

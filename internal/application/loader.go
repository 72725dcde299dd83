package application

import "context"

type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateSucceeded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Producer yields the full item set for one load cycle.
type Producer[T any] func(ctx context.Context) ([]T, error)

// Loader is the tri-state list resource every surface shares: loading,
// failed with a reason, or succeeded with items. Items are replaced
// wholesale on success and emptied on failure; there is no partial merge.
// Overlapping loads are not cancelled, the last one to finish wins.
type Loader[T any] struct {
	produce Producer[T]
	state   LoadState
	items   []T
	err     error
}

func NewLoader[T any](produce Producer[T]) *Loader[T] {
	return &Loader[T]{produce: produce, state: StateIdle}
}

func (l *Loader[T]) Load(ctx context.Context) error {
	l.state = StateLoading
	l.err = nil

	items, err := l.produce(ctx)
	if err != nil {
		l.items = nil
		l.err = err
		l.state = StateFailed
		return err
	}

	if items == nil {
		items = []T{}
	}
	l.items = items
	l.state = StateSucceeded
	return nil
}

// Retry re-runs the load with no other state changes.
func (l *Loader[T]) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// Prepend inserts a known-complete record at the head of the loaded
// items, the optimistic-insert strategy for create endpoints that return
// the full new record.
func (l *Loader[T]) Prepend(item T) {
	l.items = append([]T{item}, l.items...)
}

func (l *Loader[T]) Items() []T {
	return l.items
}

func (l *Loader[T]) Err() error {
	return l.err
}

func (l *Loader[T]) State() LoadState {
	return l.state
}

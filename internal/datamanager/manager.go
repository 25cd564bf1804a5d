package datamanager

import (
	"context"
	"fmt"
	"log"

	"github.com/five82/showtrack/internal/media"
)

// Lister is the store connection owned by the worker.
type Lister interface {
	ListAll(ctx context.Context) ([]media.Show, error)
	Close() error
}

// OpenFunc establishes the worker's store connection. It runs on the worker
// goroutine.
type OpenFunc func() (Lister, error)

// InitError reports that the worker or its store connection could not be
// established.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("data manager init: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Manager answers show queries from a single background worker. Requests are
// served one at a time in the order they were sent.
type Manager struct {
	requests  chan string
	responses chan []media.Show
	done      chan struct{}
	closed    bool
}

// Init starts the worker and waits until its store connection is open.
func Init(open OpenFunc) (*Manager, error) {
	if open == nil {
		return nil, &InitError{Err: fmt.Errorf("no store opener")}
	}

	m := &Manager{
		requests:  make(chan string, 1),
		responses: make(chan []media.Show, 1),
		done:      make(chan struct{}),
	}
	ready := make(chan error, 1)
	go m.run(open, ready)

	select {
	case err := <-ready:
		if err != nil {
			return nil, &InitError{Err: err}
		}
	case <-m.done:
		select {
		case err := <-ready:
			if err != nil {
				return nil, &InitError{Err: err}
			}
		default:
		}
		return nil, &InitError{Err: fmt.Errorf("worker exited before opening the store")}
	}
	return m, nil
}

// Query sends text to the worker and blocks until it replies. The boolean is
// false when the worker is gone; that is distinct from an empty result.
//
// The text is not interpreted yet: every query lists all shows.
func (m *Manager) Query(text string) ([]media.Show, bool) {
	if m == nil || m.closed {
		return nil, false
	}
	select {
	case m.requests <- text:
	case <-m.done:
		return nil, false
	}
	select {
	case shows := <-m.responses:
		return shows, true
	case <-m.done:
		return nil, false
	}
}

// Close stops the worker after any in-flight request and waits for it to
// release its store connection. Close must not race with Query.
func (m *Manager) Close() {
	if m == nil || m.closed {
		return
	}
	m.closed = true
	close(m.requests)
	<-m.done
}

// Done is closed once the worker has exited.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

func (m *Manager) run(open OpenFunc, ready chan<- error) {
	defer close(m.done)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("level=error msg=\"data manager worker panicked\" panic=%q", fmt.Sprint(r))
		}
	}()

	store, err := open()
	if err != nil {
		ready <- err
		return
	}
	if store == nil {
		ready <- fmt.Errorf("store opener returned nil")
		return
	}
	defer func() { _ = store.Close() }()
	ready <- nil

	ctx := context.Background()
	for text := range m.requests {
		shows, err := store.ListAll(ctx)
		if err != nil {
			log.Printf("level=error msg=\"data manager list failed\" query=%q err=%q", text, err)
			return
		}
		m.responses <- shows
	}
}

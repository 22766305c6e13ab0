package page

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrSessionClosed   = fmt.Errorf("page session is closed")
	ErrSessionNotFound = fmt.Errorf("page session not found")
)

/*
Session owns one page view. Every change to the page runs on the
session's event loop goroutine, so the page needs no locking. Closing
the session stops the loop and every timer scheduled through it.
*/
type Session struct {
	id       string
	page     *Page
	queue    chan func()
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	timers   sync.WaitGroup
	lastSeen atomic.Int64
}

func NewSession(parent context.Context, id string, p *Page) *Session {
	ctx, cancel := context.WithCancel(parent)

	result := &Session{
		id:     id,
		page:   p,
		queue:  make(chan func()),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	result.touch()
	go result.run()

	return result
}

func (s *Session) run() {
	defer close(s.done)

	for {
		select {
		case <-s.ctx.Done():
			return

		case fn := <-s.queue:
			fn()
		}
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

/*
Do runs fn on the event loop and waits for it to finish. It fails when
ctx ends first or the session is closed.
*/
func (s *Session) Do(ctx context.Context, fn func(p *Page)) error {
	finished := make(chan struct{})

	task := func() {
		defer close(finished)
		fn(s.page)
	}

	select {
	case s.queue <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ctx.Done():
		return ErrSessionClosed
	}

	<-finished
	s.touch()
	return nil
}

/*
Every schedules fn on the event loop at a fixed interval until the
session closes. It satisfies components.Scheduler.
*/
func (s *Session) Every(interval time.Duration, fn func()) {
	s.timers.Add(1)

	go func() {
		defer s.timers.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return

			case <-ticker.C:
				select {
				case s.queue <- fn:
				case <-s.ctx.Done():
					return
				}
			}
		}
	}()
}

func (s *Session) Click(ctx context.Context, target string) error {
	return s.Do(ctx, func(p *Page) {
		p.Click(target)
	})
}

func (s *Session) KeyDown(ctx context.Context, key string) error {
	return s.Do(ctx, func(p *Page) {
		p.KeyDown(key)
	})
}

// Render serializes the current document.
func (s *Session) Render(ctx context.Context) ([]byte, error) {
	var (
		err       error
		renderErr error
		buf       bytes.Buffer
	)

	err = s.Do(ctx, func(p *Page) {
		renderErr = p.Doc.Render(&buf)
	})

	if err != nil {
		return nil, err
	}

	if renderErr != nil {
		return nil, fmt.Errorf("error rendering session %s: %w", s.id, renderErr)
	}

	return buf.Bytes(), nil
}

// Close stops the event loop and its timers. It is safe to call more than once.
func (s *Session) Close() {
	s.cancel()
	<-s.done
	s.timers.Wait()
}

func (s *Session) Closed() bool {
	return s.ctx.Err() != nil
}

type sessionContextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	result, ok := ctx.Value(sessionContextKey{}).(*Session)
	return result, ok
}

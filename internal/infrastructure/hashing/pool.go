package hashing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type task struct {
	run  func()
	done chan struct{}
}

// Pool bounds concurrent bcrypt work on a fixed set of workers so a burst of
// registrations or logins cannot monopolise the CPU and starve unrelated
// request handling. Calls block until a worker picks the task up or the
// caller's context is cancelled.
type Pool struct {
	inner ports.PasswordHasher
	tasks chan task
	size  int
	log   zerolog.Logger
}

// NewPool wraps a hasher with a worker pool of the given size.
// If workers <= 0, defaultWorkers is used.
func NewPool(workers int, inner ports.PasswordHasher, log zerolog.Logger) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Pool{
		inner: inner,
		tasks: make(chan task, channelBuffer),
		size:  workers,
		log:   log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.log.Debug().Int("workers", p.size).Msg("hashing pool started")
	for i := 0; i < p.size; i++ {
		go p.runWorker(ctx)
	}
}

// Hash runs the wrapped hasher's Hash on a pool worker.
func (p *Pool) Hash(ctx context.Context, password string) (string, error) {
	var (
		hash string
		err  error
	)
	if submitErr := p.submit(ctx, func() {
		hash, err = p.inner.Hash(ctx, password)
	}); submitErr != nil {
		return "", submitErr
	}
	return hash, err
}

// Verify runs the wrapped hasher's Verify on a pool worker. Cancellation
// while queued counts as a mismatch.
func (p *Pool) Verify(ctx context.Context, password, hash string) bool {
	ok := false
	if err := p.submit(ctx, func() {
		ok = p.inner.Verify(ctx, password, hash)
	}); err != nil {
		return false
	}
	return ok
}

func (p *Pool) submit(ctx context.Context, run func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := task{run: run, done: make(chan struct{})}
	select {
	case p.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			t.run()
			close(t.done)
		}
	}
}

package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate mockgen -source=dispatcher.go -destination=../../../tests/mock/notify/dispatcher.go -package=notifymock

const KindBookingConfirmed = "booking_confirmed"

// Sender delivers one message. Implementations must honour ctx cancellation.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Job struct {
	Kind      string
	BookingID string
	To        string
	Subject   string
	Body      string
}

// Dispatcher drains queued jobs on a single worker so mail latency never reaches a request.
type Dispatcher struct {
	sender  Sender
	queue   chan Job
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, queueSize int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		sender:  sender,
		queue:   make(chan Job, queueSize),
		timeout: timeout,
		logger:  logger,
	}
}

// Enqueue reports false when the job was dropped because the queue is full or closed.
func (d *Dispatcher) Enqueue(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notification dropped: dispatcher stopped", "kind", job.Kind, "booking_id", job.BookingID)
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		d.logger.Warn("notification dropped: queue full", "kind", job.Kind, "booking_id", job.BookingID)
		return false
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for job := range d.queue {
			d.deliver(job)
		}
	}()
}

// Stop closes the queue and waits for queued jobs to drain or ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) deliver(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.Send(ctx, job.To, job.Subject, job.Body); err != nil {
		d.logger.Warn("notification delivery failed",
			"kind", job.Kind,
			"booking_id", job.BookingID,
			"to", job.To,
			"error", err.Error(),
		)
		return
	}
	d.logger.Info("notification delivered", "kind", job.Kind, "booking_id", job.BookingID)
}

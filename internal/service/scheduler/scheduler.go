// Package scheduler owns the wall-clock triggering of background jobs. It is
// an explicit object constructed at startup and started/stopped by whatever
// owns the process lifecycle — no package-level singleton.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alanyang/caller-hub/internal/metrics"
)

// ErrInvalidJob covers malformed registrations: empty name, non-positive
// interval, or a duplicate name.
var ErrInvalidJob = errors.New("invalid scheduler job")

// ErrUnknownJob is returned by TriggerNow for a name that was never registered.
var ErrUnknownJob = errors.New("unknown scheduler job")

// JobFunc is one job body. Errors are caught at the scheduler boundary and
// never unarm the timer.
type JobFunc func(ctx context.Context) error

// JobStatus is the introspection shape rendered by the admin dashboard.
type JobStatus struct {
	Running   bool       `json:"running"`
	Interval  string     `json:"interval"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

type job struct {
	name     string
	interval time.Duration
	fn       JobFunc

	lastRun   *time.Time
	nextRun   *time.Time
	lastError string
}

// Scheduler fires each registered job on its own fixed interval. Jobs tick
// independently — one job firing never delays another.
type Scheduler struct {
	mu      sync.Mutex
	jobs    map[string]*job
	order   []string
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*job)}
}

// Register adds a named periodic job. Must be called before Start.
func (s *Scheduler) Register(name string, interval time.Duration, fn JobFunc) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidJob)
	}
	if interval <= 0 {
		return fmt.Errorf("%w: non-positive interval for %q", ErrInvalidJob, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil function for %q", ErrInvalidJob, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidJob, name)
	}
	s.jobs[name] = &job{name: name, interval: interval, fn: fn}
	s.order = append(s.order, name)
	return nil
}

// Start arms one ticker goroutine per registered job. Calling Start on a
// running scheduler is a safe no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		slog.Info("scheduler already running, start ignored")
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop

	now := time.Now().UTC()
	for _, name := range s.order {
		j := s.jobs[name]
		next := now.Add(j.interval)
		j.nextRun = &next

		s.wg.Add(1)
		go s.runLoop(j, stop)
		slog.Info("scheduler job armed", "job", j.name, "interval", j.interval)
	}
	s.mu.Unlock()
}

// Stop disarms all timers and waits for in-flight job bodies to finish.
// Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	for _, j := range s.jobs {
		j.nextRun = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("scheduler stopped")
}

// TriggerNow invokes the named job's body synchronously, outside its normal
// schedule. The job's ticker is not reset or otherwise perturbed.
func (s *Scheduler) TriggerNow(ctx context.Context, name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
	return s.invoke(ctx, j)
}

// Status reports each known job's armed state and timestamps. Purely an
// in-memory read.
func (s *Scheduler) Status() map[string]JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]JobStatus, len(s.jobs))
	for name, j := range s.jobs {
		st := JobStatus{
			Running:   s.running,
			Interval:  j.interval.String(),
			LastError: j.lastError,
		}
		if j.lastRun != nil {
			t := *j.lastRun
			st.LastRun = &t
		}
		if j.nextRun != nil {
			t := *j.nextRun
			st.NextRun = &t
		}
		out[name] = st
	}
	return out
}

func (s *Scheduler) runLoop(j *job, stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			next := time.Now().UTC().Add(j.interval)
			s.mu.Lock()
			j.nextRun = &next
			s.mu.Unlock()

			if err := s.invoke(context.Background(), j); err != nil {
				slog.Error("scheduled job failed", "job", j.name, "error", err)
			}
		}
	}
}

// invoke runs one job body with panic containment and status bookkeeping.
// A panic or error is recorded and logged; the timer stays armed.
func (s *Scheduler) invoke(ctx context.Context, j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %q panicked: %v", j.name, r)
		}

		now := time.Now().UTC()
		s.mu.Lock()
		j.lastRun = &now
		if err != nil {
			j.lastError = err.Error()
		} else {
			j.lastError = ""
		}
		s.mu.Unlock()

		if err == nil {
			metrics.JobLastSuccessTimestamp.WithLabelValues(j.name).Set(float64(now.Unix()))
		}
	}()

	return j.fn(ctx)
}

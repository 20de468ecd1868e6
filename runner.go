package ggapp

import (
	"fmt"
	"runtime"
	"sync"
)

// Run constructs the backend for cfg and drives it on the calling
// goroutine: Setup, then Loop until Exit. The goroutine is locked to its
// OS thread for the duration, as window systems require.
//
// Selection and construction errors wrap ErrBackendUnavailable or
// ErrInstantiation.
func Run(program Program, cfg Configuration) error {
	a, err := NewApplication(program, cfg)
	if err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return drive(a)
}

// RunDefault runs program with DefaultConfig.
func RunDefault(program Program) error {
	return Run(program, DefaultConfig())
}

// RunAsync is like Run but drives the backend on a new goroutine and
// returns as soon as that goroutine is started, without waiting for Setup.
// Selection and construction still happen on the caller, so their errors
// are returned before anything is started.
//
// The instance is not returned; a Program that needs it keeps the
// Application passed to its Setup. Use the Task to wait for or cancel the
// run.
func RunAsync(program Program, cfg Configuration) (*Task, error) {
	a, err := NewApplication(program, cfg)
	if err != nil {
		return nil, err
	}

	t := &Task{app: a, done: make(chan struct{})}
	go t.run()
	return t, nil
}

func drive(a Application) error {
	if err := a.Setup(); err != nil {
		return fmt.Errorf("ggapp: setup: %w", err)
	}
	return a.Loop()
}

// Task is a handle to a run started by RunAsync.
type Task struct {
	app  Application
	done chan struct{}

	mu  sync.Mutex
	err error
}

func (t *Task) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := drive(t.app)

	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	close(t.done)
}

// Done is closed when the loop has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the run ends and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.Err()
}

// Err returns the run error, or nil while running.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Cancel asks the run to exit after the in-flight frame. It does not wait;
// call Wait for that. Cancel is safe to call more than once, including
// before Setup has finished.
func (t *Task) Cancel() {
	t.app.Exit()
}

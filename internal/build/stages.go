package build

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/bloggen/internal/logfields"
)

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying the failing stage and cause.
type StageError struct {
	Kind  StageErrorKind
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// stageDef is a named discrete unit of work in the site build.
type stageDef struct {
	Name string
	Fn   func(ctx context.Context, st *state) error
}

// runStages executes stages in order, recording timing and metrics, and
// stopping on the first failure. Cancellation is checked at stage
// boundaries only: within a stage the build either completes the phase or
// fails, matching the all-or-nothing output contract.
func runStages(ctx context.Context, st *state, stages []stageDef) error {
	for _, sd := range stages {
		select {
		case <-ctx.Done():
			return &StageError{Kind: StageErrorCanceled, Stage: sd.Name, Err: ctx.Err()}
		default:
		}

		t0 := time.Now()
		err := sd.Fn(ctx, st)
		dur := time.Since(t0)
		st.report.StageDurations[sd.Name] = dur
		st.recorder.ObserveStageDuration(sd.Name, dur)
		slog.Debug("Stage complete",
			logfields.Stage(sd.Name),
			logfields.DurationMS(float64(dur.Milliseconds())),
			logfields.Error(err))
		if err != nil {
			return &StageError{Kind: StageErrorFatal, Stage: sd.Name, Err: err}
		}
	}
	return nil
}

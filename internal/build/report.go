package build

import "time"

// Outcome is the typed enumeration of final build result states.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Report captures high-level metrics about one build run.
type Report struct {
	BuildID string
	Start   time.Time
	End     time.Time
	Outcome Outcome

	Documents    int // authored documents parsed
	TagPages     int // derived tag pages
	PagesWritten int // total HTML pages written
	AssetsCopied int // files copied from the assets directory

	StageDurations map[string]time.Duration

	// Warnings carries advisory findings (e.g. unresolved internal links)
	// that do not fail the build.
	Warnings []string
}

// Duration returns the wall-clock build duration.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Package build orchestrates the content pipeline: discovering content
// documents, parsing and rendering them in parallel, aggregating the site,
// rendering layouts, and emitting the output tree.
//
// A build either completes and writes the full output tree, or aborts
// before any output mutation with a reported error. Partial output is never
// an observable state: the destination-path collision check runs over the
// complete rendered set before the first write.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/content"
	"git.home.luguber.info/inful/bloggen/internal/frontmatter"
	"git.home.luguber.info/inful/bloggen/internal/layout"
	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/markdown"
	"git.home.luguber.info/inful/bloggen/internal/metrics"
	"git.home.luguber.info/inful/bloggen/internal/site"
)

// Options tunes a build run.
type Options struct {
	// Concurrency bounds the parse and render worker pools. Zero means
	// GOMAXPROCS.
	Concurrency int

	// Recorder receives build metrics. Nil means no metrics.
	Recorder metrics.Recorder
}

// state carries the intermediate products of one build across stages.
type state struct {
	cfg         *config.Config
	reg         *layout.Registry
	md          *markdown.Renderer
	concurrency int
	recorder    metrics.Recorder

	sources []string
	docs    []*content.Document
	site    *site.Site
	derived *site.Derived
	pages   []Page
	assets  []string

	report *Report
}

// Run executes a full build: content under cfg.ContentDir is rendered
// through the registry into cfg.OutputDir.
//
// Every error is fatal to the build and identifies the offending document,
// field, or path. The returned Report is populated as far as the build got,
// including on failure.
func Run(ctx context.Context, cfg *config.Config, reg *layout.Registry, opts Options) (*Report, error) {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	st := &state{
		cfg:         cfg,
		reg:         reg,
		md:          markdown.NewRenderer(),
		concurrency: concurrency,
		recorder:    recorder,
		report: &Report{
			BuildID:        uuid.NewString(),
			Start:          time.Now(),
			StageDurations: make(map[string]time.Duration),
		},
	}

	slog.Info("Starting build",
		logfields.BuildID(st.report.BuildID),
		logfields.Path(cfg.ContentDir))

	err := runStages(ctx, st, []stageDef{
		{Name: "discover", Fn: stageDiscover},
		{Name: "parse", Fn: stageParse},
		{Name: "aggregate", Fn: stageAggregate},
		{Name: "render", Fn: stageRender},
		{Name: "plan", Fn: stagePlan},
		{Name: "write", Fn: stageWrite},
		{Name: "verify", Fn: stageVerify},
	})

	st.report.End = time.Now()
	if err != nil {
		st.report.Outcome = OutcomeFailed
		var serr *StageError
		if errors.As(err, &serr) && serr.Kind == StageErrorCanceled {
			st.report.Outcome = OutcomeCanceled
		}
		recorder.IncBuildOutcome(string(st.report.Outcome))
		return st.report, err
	}

	st.report.Outcome = OutcomeSuccess
	recorder.IncBuildOutcome(string(OutcomeSuccess))
	recorder.ObserveBuildDuration(st.report.Duration())
	recorder.AddPagesWritten(st.report.PagesWritten)
	slog.Info("Build complete",
		logfields.BuildID(st.report.BuildID),
		logfields.Pages(st.report.PagesWritten),
		logfields.DurationMS(float64(st.report.Duration().Milliseconds())))
	return st.report, nil
}

func stageDiscover(_ context.Context, st *state) error {
	sources, err := content.DiscoverSources(st.cfg.ContentDir)
	if err != nil {
		return err
	}
	st.sources = sources
	return nil
}

// stageParse fans out per-document work: front matter split, YAML decode,
// Markdown rendering, and model validation. Documents are independent of
// each other; the first error in source order aborts.
func stageParse(_ context.Context, st *state) error {
	results := runOrdered(st.sources, st.concurrency, func(src string) (*content.Document, error) {
		return parseSource(st, src)
	})
	if err := firstError(results); err != nil {
		return err
	}
	st.docs = make([]*content.Document, len(results))
	for i, r := range results {
		st.docs[i] = r.Value
	}
	st.report.Documents = len(st.docs)
	return nil
}

func parseSource(st *state, src string) (*content.Document, error) {
	full := filepath.Join(st.cfg.ContentDir, src)
	raw, err := os.ReadFile(full) // #nosec G304 -- paths come from the content walk
	if err != nil {
		return nil, &IOError{Path: full, Cause: err}
	}

	fields, body, err := frontmatter.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	html, err := st.md.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	return content.Build(fields, html, src)
}

// stageAggregate builds the immutable Site view and synthesizes the derived
// listing documents. This is the fan-in barrier of the parse phase.
func stageAggregate(_ context.Context, st *state) error {
	st.site = site.Aggregate(st.docs)

	linkFor := func(d *content.Document) string {
		return pageLink(outputPath(d, st.cfg.FlatOutput))
	}
	for _, d := range st.site.Documents {
		d.URL = st.cfg.BaseURL + linkFor(d)
	}

	derived, err := site.Derive(st.site, site.DeriveOptions{
		SiteTitle:   st.cfg.Title,
		IndexLayout: st.cfg.IndexLayout,
		TagLayout:   st.cfg.TagLayout,
		LinkFor:     linkFor,
		Render:      st.md.Render,
	})
	if err != nil {
		return err
	}
	derived.Index.URL = st.cfg.BaseURL + linkFor(derived.Index)
	for _, page := range derived.TagPages {
		page.URL = st.cfg.BaseURL + linkFor(page)
	}

	st.derived = derived
	st.report.TagPages = len(derived.TagPages)
	return nil
}

// stageRender resolves each document's layout against the registry and
// renders the final pages, authored and derived alike, in parallel against
// the shared read-only Site.
func stageRender(_ context.Context, st *state) error {
	docs := make([]*content.Document, 0, len(st.site.Documents)+1+len(st.derived.TagPages))
	docs = append(docs, st.site.Documents...)
	docs = append(docs, st.derived.Index)
	for _, tag := range st.site.TagNames {
		docs = append(docs, st.derived.TagPages[tag])
	}

	results := runOrdered(docs, st.concurrency, func(doc *content.Document) (Page, error) {
		html, err := st.reg.Render(doc, st.site)
		if err != nil {
			return Page{}, err
		}
		return Page{Doc: doc, Path: outputPath(doc, st.cfg.FlatOutput), HTML: html}, nil
	})
	if err := firstError(results); err != nil {
		return err
	}

	st.pages = make([]Page, len(results))
	for i, r := range results {
		st.pages[i] = r.Value
	}
	return nil
}

// stagePlan orders the output set and runs the collision pre-pass. No file
// write happens before this stage passes.
func stagePlan(_ context.Context, st *state) error {
	sortPages(st.pages)
	return checkCollisions(st.pages)
}

func stageWrite(_ context.Context, st *state) error {
	if err := writePages(st.cfg.OutputDir, st.pages); err != nil {
		return err
	}
	st.report.PagesWritten = len(st.pages)

	copied, err := copyAssets(st.cfg.AssetsDir, st.cfg.OutputDir)
	if err != nil {
		return err
	}
	st.assets = copied
	st.report.AssetsCopied = len(copied)

	if st.cfg.AtomEnabled() {
		if err := writeAtomFeed(st.cfg, st.site, filepath.Join(st.cfg.OutputDir, atomFeedName)); err != nil {
			return err
		}
	}
	return nil
}

func stageVerify(_ context.Context, st *state) error {
	warnings := verifyInternalLinks(st.pages, st.assets, st.cfg.AtomEnabled())
	for _, w := range warnings {
		slog.Warn("Unresolved internal link", slog.String("detail", w))
	}
	st.report.Warnings = append(st.report.Warnings, warnings...)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"git.home.luguber.info/inful/bloggen/internal/build"
	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/layout"
	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Override the configured output directory"`
	Concurrency int    `short:"j" help:"Parallel parse and render workers (default GOMAXPROCS)"`
	MetricsPush string `name:"metrics-push" help:"Pushgateway URL to push build metrics to"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.OutputDir = b.Output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	reg, err := layout.LoadDir(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	recorder := metrics.Recorder(metrics.NoopRecorder{})
	var promReg *prometheus.Registry
	if b.MetricsPush != "" {
		promReg = prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(promReg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := build.Run(ctx, cfg, reg, build.Options{
		Concurrency: b.Concurrency,
		Recorder:    recorder,
	})

	if promReg != nil {
		// Batch jobs push to a Pushgateway rather than exposing an endpoint.
		if perr := push.New(b.MetricsPush, "bloggen_build").Gatherer(promReg).Push(); perr != nil {
			slog.Warn("Failed to push build metrics", logfields.Error(perr))
		}
	}

	if err != nil {
		return err
	}

	fmt.Printf("Built %d pages (%d documents, %d tag pages) to %s in %s\n",
		report.PagesWritten, report.Documents, report.TagPages,
		cfg.OutputDir, report.Duration().Round(time.Millisecond))
	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}

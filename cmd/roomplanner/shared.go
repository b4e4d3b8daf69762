package roomplanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/planner"
	"github.com/viant/roomplanner/genai/usage"
	"github.com/viant/roomplanner/internal/asset"
	"github.com/viant/roomplanner/internal/config"
	"github.com/viant/roomplanner/internal/finder/model"
)

var (
	cfgMu   sync.RWMutex
	cfgPath string
)

// called from CLI before flag parsing
func setConfigPath(p string) {
	cfgMu.Lock()
	cfgPath = p
	cfgMu.Unlock()
}

func configPath() string {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfgPath
}

// runtime bundles what a command needs to drive one session.
type runtime struct {
	config  *config.Config
	manager *planner.Manager
	assets  *asset.Service
	usage   *usage.Aggregator
}

func bootstrap(ctx context.Context) (*runtime, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	fs := afs.New()
	cfg, err := config.Load(ctx, fs, configPath())
	if err != nil {
		return nil, err
	}
	aggregator := &usage.Aggregator{}
	cfg.Model.Options.UsageListener = aggregator.OnUsage
	finder := model.New(model.WithInitial(cfg.Model))
	manager := planner.New(finder, cfg.Model.ID,
		planner.WithPrompts(cfg.Prompts),
		planner.WithGenerateOptions(cfg.Model.Options.GenerateOptions()),
	)
	return &runtime{config: cfg, manager: manager, assets: asset.New(fs), usage: aggregator}, nil
}

func withTimeout(ctx context.Context, seconds int) (context.Context, context.CancelFunc) {
	if seconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
}

// describeError renders a planner error for the terminal; it returns true
// when the session cannot continue.
func describeError(w io.Writer, err error) bool {
	var planErr *planner.Error
	if !errors.As(err, &planErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return true
	}
	switch planErr.Kind {
	case planner.KindUnconfigured:
		fmt.Fprintln(w, planner.UnconfiguredMessage)
		return true
	case planner.KindUnauthorized:
		fmt.Fprintln(w, "The API key was rejected. Check the configured credential.")
		return true
	case planner.KindRateLimited:
		fmt.Fprintln(w, "The model is busy (rate limited). Wait a moment and try again.")
		return false
	case planner.KindNotReady:
		fmt.Fprintf(w, "Not ready: %v\n", planErr.Message)
		return false
	}
	fmt.Fprintf(w, "error: %v\n", planErr)
	return false
}

func printAnalysis(w io.Writer, outcome *planner.AnalysisOutcome) {
	if outcome.Text != "" {
		fmt.Fprintln(w, outcome.Text)
	}
	if len(outcome.Rooms) > 0 {
		fmt.Fprintf(w, "rooms (%d):\n", len(outcome.Rooms))
		for _, room := range outcome.Rooms {
			fmt.Fprintf(w, "  - %v\n", room)
		}
	}
}

func saveImage(ctx context.Context, w io.Writer, assets *asset.Service, outputURL, name string, image *llm.ImageSegment) error {
	if image == nil {
		return nil
	}
	dest, err := assets.Save(ctx, outputURL, name, image)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "image saved: %v\n", dest)
	return nil
}

package roomplanner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/viant/roomplanner/genai/planner"
)

// AnalyzeCmd runs a single analysis turn and exits.
type AnalyzeCmd struct {
	Image   string `short:"i" long:"image" description:"floor plan or room photo path/URL" required:"yes"`
	Mode    string `short:"m" long:"mode" description:"floorPlan or roomPhoto" default:"floorPlan"`
	Output  string `short:"o" long:"output" description:"destination folder/URL for generated images"`
	Timeout int    `short:"t" long:"timeout" description:"request timeout in seconds (0 = none)" default:"0"`

	out io.Writer
}

func (a *AnalyzeCmd) Execute(_ []string) error {
	mode, err := planner.ParseMode(a.Mode)
	if err != nil {
		return err
	}
	ctx := context.Background()
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.manager.Dispose()
	out := a.out
	if out == nil {
		out = os.Stdout
	}
	outputURL := a.Output
	if outputURL == "" {
		outputURL = rt.config.OutputURL
	}
	image, err := rt.assets.Load(ctx, a.Image)
	if err != nil {
		return err
	}
	callCtx, cancel := withTimeout(ctx, a.Timeout)
	defer cancel()
	outcome, err := rt.manager.StartAnalysis(callCtx, image, mode)
	if err != nil {
		describeError(out, err)
		return fmt.Errorf("analysis failed: %w", err)
	}
	printAnalysis(out, outcome)
	if err = saveImage(ctx, out, rt.assets, outputURL, rt.manager.ID()+"-0", outcome.Image); err != nil {
		return err
	}
	fmt.Fprintf(out, "usage: %v\n", rt.usage)
	return nil
}

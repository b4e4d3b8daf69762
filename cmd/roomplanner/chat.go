package roomplanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/planner"
	"github.com/viant/roomplanner/internal/asset"
	elog "github.com/viant/roomplanner/internal/log"
)

// ChatCmd analyzes an image and then applies edit prompts read line by line.
// "/reset" starts over with the same image, "/quit" exits.
type ChatCmd struct {
	Image   string `short:"i" long:"image" description:"floor plan or room photo path/URL" required:"yes"`
	Mode    string `short:"m" long:"mode" description:"floorPlan or roomPhoto" default:"floorPlan"`
	Output  string `short:"o" long:"output" description:"destination folder/URL for generated images"`
	LLMLog  string `long:"llm-log" description:"file to append planner request/response events to"`
	Timeout int    `short:"t" long:"timeout" description:"per-request timeout in seconds (0 = none)" default:"0"`

	in  io.Reader
	out io.Writer
}

func (c *ChatCmd) Execute(_ []string) error {
	mode, err := planner.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	if c.LLMLog != "" {
		f, err := os.OpenFile(c.LLMLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open llm log file: %w", err)
		}
		done := elog.FileSink(f, elog.PlannerRequest, elog.PlannerResponse, elog.PlannerError)
		defer func() {
			elog.Default.Close()
			<-done
			_ = f.Close()
		}()
	}
	ctx := context.Background()
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.manager.Dispose()
	image, err := rt.assets.Load(ctx, c.Image)
	if err != nil {
		return err
	}
	session := &chatSession{
		manager:   rt.manager,
		assets:    rt.assets,
		image:     image,
		mode:      mode,
		outputURL: c.Output,
		timeout:   c.Timeout,
		in:        c.in,
		out:       c.out,
	}
	if session.outputURL == "" {
		session.outputURL = rt.config.OutputURL
	}
	if session.in == nil {
		session.in = os.Stdin
	}
	if session.out == nil {
		session.out = os.Stdout
	}
	err = session.run(ctx)
	fmt.Fprintf(session.out, "usage: %v\n", rt.usage)
	return err
}

// chatSession drives one manager from a line-oriented reader.
type chatSession struct {
	manager   *planner.Manager
	assets    *asset.Service
	image     *llm.ImageSegment
	mode      planner.Mode
	outputURL string
	timeout   int
	in        io.Reader
	out       io.Writer
	saved     int
}

func (s *chatSession) run(ctx context.Context) error {
	if err := s.analyze(ctx); err != nil {
		return err
	}
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			s.manager.Reset()
			fmt.Fprintln(s.out, "session reset")
			if err := s.analyze(ctx); err != nil {
				return err
			}
			continue
		}
		if err := s.edit(ctx, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *chatSession) analyze(ctx context.Context) error {
	callCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	outcome, err := s.manager.StartAnalysis(callCtx, s.image, s.mode)
	if err != nil {
		describeError(s.out, err)
		return fmt.Errorf("analysis failed: %w", err)
	}
	printAnalysis(s.out, outcome)
	return s.save(ctx, outcome.Image)
}

// edit returns an error only when the session cannot continue.
func (s *chatSession) edit(ctx context.Context, prompt string) error {
	callCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	outcome, err := s.manager.ApplyEdit(callCtx, prompt)
	if err != nil {
		if describeError(s.out, err) {
			return fmt.Errorf("edit failed: %w", err)
		}
		return nil
	}
	if outcome.Text != "" {
		fmt.Fprintln(s.out, outcome.Text)
	}
	return s.save(ctx, outcome.Image)
}

func (s *chatSession) save(ctx context.Context, image *llm.ImageSegment) error {
	if image == nil {
		return nil
	}
	name := fmt.Sprintf("%v-%d", s.manager.ID(), s.saved)
	s.saved++
	return saveImage(ctx, s.out, s.assets, s.outputURL, name, image)
}

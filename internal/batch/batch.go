// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts every PDF in a directory, falling back from the
// vision mode to the text mode when the first attempt fails.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-md/internal/generate"
	"github.com/pdiddy/paper-md/pkg/types"
)

// Generator produces one markdown file for one document in one mode.
// *generate.Generator implements it.
type Generator interface {
	Generate(ctx context.Context, doc types.Document, outputPath string, mode types.Mode) error
}

var _ Generator = (*generate.Generator)(nil)

// Outcome records how one document left the state machine.
type Outcome struct {
	Document types.Document
	State    State

	// Mode is the mode that produced Output; unset when State is StateFailed.
	Mode   types.Mode
	Output string

	// Errors holds the failure of each unsuccessful attempt, in order.
	Errors []error
}

// Summary holds the outcomes of a batch run.
type Summary struct {
	RunID    string
	Outcomes []Outcome
}

// Count returns the number of documents that finished in state.
func (s Summary) Count(state State) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.State == state {
			n++
		}
	}
	return n
}

// CountMode returns the number of documents whose output came from mode.
func (s Summary) CountMode(mode types.Mode) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.State == StateDone && o.Mode == mode {
			n++
		}
	}
	return n
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return len(s.Outcomes)
}

// HasFailures reports whether any document failed both attempts.
func (s Summary) HasFailures() bool {
	return s.Count(StateFailed) > 0
}

// Driver walks an input directory and runs each PDF through the generator.
type Driver struct {
	gen    Generator
	w      io.Writer
	logger *zap.Logger
}

// NewDriver creates a Driver that prints one line per outcome to w.
// A nil logger disables diagnostics.
func NewDriver(gen Generator, w io.Writer, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{gen: gen, w: w, logger: logger}
}

// Scan lists the PDFs directly inside dir, in lexical order.
func Scan(dir string) ([]types.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		docs = append(docs, types.NewDocument(filepath.Join(dir, entry.Name())))
	}
	return docs, nil
}

// Run converts every PDF in inputDir into outputDir, which is created when
// missing. A failing document never stops the batch. A cancelled context is
// only observed between documents; Run then returns the outcomes so far
// together with ctx.Err().
func (d *Driver) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	logger := d.logger.With(zap.String("run_id", summary.RunID))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}

	docs, err := Scan(inputDir)
	if err != nil {
		return summary, err
	}
	logger.Info("Starting batch",
		zap.String("input", inputDir),
		zap.String("output", outputDir),
		zap.Int("documents", len(docs)))

	start := time.Now()
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			logger.Warn("Batch interrupted", zap.Int("remaining", len(docs)-summary.Total()), zap.Error(err))
			return summary, err
		}
		summary.Outcomes = append(summary.Outcomes, d.process(ctx, doc, outputDir, logger))
	}

	logger.Info("Batch finished",
		zap.Int("total", summary.Total()),
		zap.Int("vision", summary.CountMode(types.ModeVision)),
		zap.Int("text", summary.CountMode(types.ModeText)),
		zap.Int("failed", summary.Count(StateFailed)),
		zap.Duration("elapsed", time.Since(start)))
	return summary, nil
}

// process drives one document from StateAttemptingVision to a terminal state.
func (d *Driver) process(ctx context.Context, doc types.Document, outputDir string, logger *zap.Logger) Outcome {
	outcome := Outcome{Document: doc, State: StateAttemptingVision}

	for !outcome.State.Terminal() {
		mode, _ := outcome.State.mode()
		output := generate.OutputPath(outputDir, doc, mode)

		err := d.gen.Generate(ctx, doc, output, mode)
		if err == nil {
			fmt.Fprintf(d.w, "%s markdown generated for %s\n", mode.Label(), doc.FileName())
			outcome.Mode = mode
			outcome.Output = output
		} else {
			fmt.Fprintf(d.w, "%s generation failed for %s: %v\n", mode.Label(), doc.FileName(), err)
			outcome.Errors = append(outcome.Errors, err)
		}

		next := outcome.State.next(err == nil)
		logger.Debug("Document transition",
			zap.String("document", doc.FileName()),
			zap.Stringer("from", outcome.State),
			zap.Stringer("to", next))
		outcome.State = next
	}

	return outcome
}

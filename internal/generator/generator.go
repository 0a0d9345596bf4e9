// =============================================================================
// pain.001 / pain.002 Batch Generator - Generator Module
// =============================================================================
//
// This module runs a batch: it clears the output directories once, then for
// each run writes a pain.001 file set and the matching pain.002 file set.
//
// PER-RUN PIPELINE:
//   1. Derive the message id (timestamp + run index)
//   2. Write <base>.meta and <base>.meta.trigger
//   3. Expand and write <base>.xml, then <base>.xml.trigger
//   4. Expand and write Pain002_<base>.xml (with a trailing newline)
//   5. Write Pain002_<base>.xml.trigger
//
// FAILURE HANDLING:
//   Runs are strictly sequential. The first write error aborts the batch;
//   files already written stay on disk.
//
// =============================================================================

package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/pain-batch-generator/internal/config"
	"github.com/ginjaninja78/pain-batch-generator/internal/pain"
	"github.com/ginjaninja78/pain-batch-generator/internal/types"
	"github.com/ginjaninja78/pain-batch-generator/internal/xmlwriter"
	"github.com/ginjaninja78/pain-batch-generator/pkg/utils"
)

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator produces pain.001/pain.002 file pairs.
type Generator struct {
	cfg     *config.Config
	builder *pain.Builder
	files   *utils.FileManager
	logger  *slog.Logger

	// now supplies the timestamp part of message ids.
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now for message id timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator for a validated configuration.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:     cfg,
		builder: pain.NewBuilder(pain.ParamsFromConfig(cfg)),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.files = utils.NewFileManager(g.logger)
	return g
}

// =============================================================================
// BATCH
// =============================================================================

// Run clears both output directories and generates count file pairs with
// txnPerBlock transactions in each of blocksPerMessage payment-info blocks.
// It stops at the first I/O error.
func (g *Generator) Run(count, txnPerBlock, blocksPerMessage int) (*utils.ProcessingSummary, error) {
	summary := &utils.ProcessingSummary{
		RunID:      utils.NewRunID(),
		StartTime:  time.Now(),
		Pain001Dir: g.cfg.Pain001Dir(),
		Pain002Dir: g.cfg.Pain002Dir(),
	}
	logger := g.logger.With("run_id", summary.RunID)

	logger.Info("Starting batch",
		"count", count,
		"transactions_per_block", txnPerBlock,
		"blocks_per_message", blocksPerMessage)

	g.files.CleanDirectory(summary.Pain001Dir)
	g.files.CleanDirectory(summary.Pain002Dir)

	for i := 1; i <= count; i++ {
		id := types.NewMessageID(g.now(), i)

		result, err := g.generateRun(id, txnPerBlock, blocksPerMessage)
		if err != nil {
			logger.Error("Error generating files", "message_id", id, "error", err)
			summary.EndTime = time.Now()
			return summary, fmt.Errorf("run %d (message id %s): %w", i, id, err)
		}

		summary.Runs++
		summary.Transactions += result.Transactions
		for _, artifact := range result.Artifacts {
			switch {
			case artifact.Kind.IsTrigger():
				summary.TriggerFiles++
			case artifact.Kind == types.Pain001XML:
				summary.Pain001Files++
			case artifact.Kind == types.Pain002XML:
				summary.Pain002Files++
			case artifact.Kind == types.Pain001Meta:
				summary.MetaFiles++
			}
		}

		logger.Info("Generated files", "message_id", id, "transactions", result.Transactions, "control_sum", result.ControlSum)
	}

	summary.EndTime = time.Now()
	logger.Info("Batch completed", "runs", summary.Runs, "elapsed", summary.EndTime.Sub(summary.StartTime))
	return summary, nil
}

// generateRun writes the pain.001 set then the pain.002 set for id.
func (g *Generator) generateRun(id types.MessageID, txnPerBlock, blocksPerMessage int) (*types.RunResult, error) {
	result := &types.RunResult{MessageID: id}

	request, err := g.GeneratePain001(id, txnPerBlock, blocksPerMessage)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, request.Artifacts...)
	result.Transactions = request.Transactions
	result.ControlSum = request.ControlSum

	report, err := g.GeneratePain002(id, txnPerBlock, blocksPerMessage)
	if err != nil {
		return nil, err
	}
	result.Artifacts = append(result.Artifacts, report.Artifacts...)

	return result, nil
}

// =============================================================================
// PAIN.001
// =============================================================================

// GeneratePain001 writes <base>.meta, <base>.meta.trigger, <base>.xml and
// <base>.xml.trigger into the pain001 directory, in that order.
func (g *Generator) GeneratePain001(id types.MessageID, txnPerBlock, blocksPerMessage int) (*types.RunResult, error) {
	dir := g.cfg.Pain001Dir()
	base := g.builder.BaseName(id)
	g.logger.Debug("Generating pain.001 files", "base", base)

	result := &types.RunResult{MessageID: id}
	w := artifactWriter{files: g.files, dir: dir}

	meta := g.builder.Meta()
	w.file(types.Pain001Meta, base+".meta", meta)
	w.trigger(types.Pain001MetaTrigger, base+".meta.trigger")
	if w.err != nil {
		return nil, w.err
	}

	doc := g.builder.Pain001(id, txnPerBlock, blocksPerMessage)
	w.file(types.Pain001XML, base+".xml", xmlwriter.PrettyPrint(doc.Text, g.cfg.PrettyPrint))
	w.trigger(types.Pain001XMLTrigger, base+".xml.trigger")

	if w.err != nil {
		return nil, w.err
	}

	result.Artifacts = w.artifacts
	result.Transactions = doc.Transactions
	result.ControlSum = doc.ControlSum.String()
	return result, nil
}

// =============================================================================
// PAIN.002
// =============================================================================

// GeneratePain002 writes Pain002_<base>.xml and its trigger into the pain002
// directory.
func (g *Generator) GeneratePain002(id types.MessageID, txnPerBlock, blocksPerMessage int) (*types.RunResult, error) {
	dir := g.cfg.Pain002Dir()
	base := g.builder.Pain002BaseName(id)
	g.logger.Debug("Generating pain.002 files", "base", base)

	w := artifactWriter{files: g.files, dir: dir}

	doc := g.builder.Pain002(id, txnPerBlock, blocksPerMessage)
	w.file(types.Pain002XML, base+".xml", xmlwriter.PrettyPrint(doc.Text, g.cfg.PrettyPrint)+"\n")
	w.trigger(types.Pain002XMLTrigger, base+".xml.trigger")

	if w.err != nil {
		return nil, w.err
	}

	return &types.RunResult{
		MessageID:    id,
		Artifacts:    w.artifacts,
		Transactions: doc.Transactions,
		ControlSum:   doc.ControlSum.String(),
	}, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// artifactWriter records written files and stops writing after the first
// error.
type artifactWriter struct {
	files     *utils.FileManager
	dir       string
	artifacts []types.Artifact
	err       error
}

func (w *artifactWriter) file(kind types.ArtifactKind, name, content string) {
	if w.err != nil {
		return
	}
	path, err := w.files.WriteFile(w.dir, name, content)
	if err != nil {
		w.err = err
		return
	}
	w.artifacts = append(w.artifacts, types.Artifact{Kind: kind, Path: path, Size: len(content)})
}

func (w *artifactWriter) trigger(kind types.ArtifactKind, name string) {
	if w.err != nil {
		return
	}
	path, err := w.files.WriteTrigger(w.dir, name)
	if err != nil {
		w.err = err
		return
	}
	w.artifacts = append(w.artifacts, types.Artifact{Kind: kind, Path: path})
}

// Package engine wires the evaluation pipeline: merge extracted blocks,
// normalize, grade quality, then score sufficiency, KPIs and compliance. The
// whole pass is a pure function of the input block set and mode.
package engine

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edassess/evalengine/internal/compliance"
	"github.com/edassess/evalengine/internal/config"
	apperrors "github.com/edassess/evalengine/internal/errors"
	"github.com/edassess/evalengine/internal/kpi"
	"github.com/edassess/evalengine/internal/monitoring"
	"github.com/edassess/evalengine/internal/normalize"
	"github.com/edassess/evalengine/internal/quality"
	"github.com/edassess/evalengine/internal/sufficiency"
	"github.com/edassess/evalengine/internal/types"
)

// Engine is safe for concurrent use; its configuration and collaborators are
// immutable after construction.
type Engine struct {
	cfg         *config.Config
	normalizer  *normalize.Normalizer
	quality     *quality.Evaluator
	sufficiency *sufficiency.Calculator
	kpis        *kpi.Engine
	compliance  *compliance.Engine
	logger      *monitoring.Logger
}

// New builds an engine with the current year injected into the time-sensitive
// collaborators.
func New(cfg *config.Config, currentYear int, logger *monitoring.Logger) *Engine {
	if logger == nil {
		logger = monitoring.NewLogger()
	}
	return &Engine{
		cfg:         cfg,
		normalizer:  normalize.NewNormalizer(cfg),
		quality:     quality.NewEvaluator(cfg, currentYear),
		sufficiency: sufficiency.NewCalculator(cfg),
		kpis:        kpi.NewEngine(cfg),
		compliance:  compliance.NewEngine(cfg, currentYear),
		logger:      logger,
	}
}

// EvaluateSubmission runs one full evaluation pass. An unsupported mode or an
// empty block set is a contract violation and errors; malformed block data
// never errors, it degrades to nulls, penalties and flags. Identical inputs
// produce identical results.
func (e *Engine) EvaluateSubmission(ctx context.Context, submissionID string, mode types.Mode, extracted []types.ExtractedBlock) (*types.EvaluationResult, error) {
	start := time.Now()

	if e.cfg.Mode(mode) == nil {
		return nil, apperrors.NewUnsupportedModeError(string(mode))
	}
	if len(extracted) == 0 {
		return nil, apperrors.NewEmptySubmissionError()
	}

	merged := normalize.MergeExtractions(extracted)
	e.logger.NormalizationLogger(string(mode), len(extracted), len(merged))

	blocks := make(map[types.BlockType]*types.Block, len(merged))
	for bt, eb := range merged {
		block := e.normalizer.NormalizeBlock(mode, eb)
		e.quality.Evaluate(mode, block)
		blocks[bt] = block
	}

	// The three scorers read the same immutable block set and are
	// independent of one another.
	var (
		suffResult types.SufficiencyResult
		kpiResults []types.KPIResult
		overall    types.OverallScore
		flags      []types.ComplianceFlag
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		suffResult = e.sufficiency.Calculate(mode, blocks)
		return nil
	})
	g.Go(func() error {
		var err error
		kpiResults, overall, err = e.kpis.Compute(mode, blocks)
		return err
	})
	g.Go(func() error {
		flags = e.compliance.Evaluate(mode, blocks)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &types.EvaluationResult{
		SubmissionID: submissionID,
		Mode:         mode,
		Blocks:       blockReports(blocks),
		Sufficiency:  suffResult,
		KPIs:         kpiResults,
		Overall:      overall,
		Flags:        flags,
	}

	e.logger.EvaluationLogger(submissionID, string(mode), len(blocks),
		suffResult.Percentage, len(flags), time.Since(start))
	return result, nil
}

// blockReports renders the per-block slice in sorted block-type order so
// output is stable across runs.
func blockReports(blocks map[types.BlockType]*types.Block) []types.BlockReport {
	keys := make([]types.BlockType, 0, len(blocks))
	for bt := range blocks {
		keys = append(keys, bt)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	reports := make([]types.BlockReport, 0, len(keys))
	for _, bt := range keys {
		b := blocks[bt]
		reports = append(reports, types.BlockReport{
			BlockType:          bt,
			Status:             b.Status,
			ComputedConfidence: b.ComputedConfidence,
			Year:               b.Year,
			StatusReasons:      b.StatusReasons,
		})
	}
	return reports
}

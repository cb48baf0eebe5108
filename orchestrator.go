package dcv

import (
	"context"
	"time"
)

// Orchestrator runs a batch of conversions sequentially through one
// strategy. Files are processed in resolver order; a failing file is
// recorded and the loop continues to the next one.
type Orchestrator struct {
	strategy Strategy
}

// NewOrchestrator creates an Orchestrator for the given strategy.
func NewOrchestrator(strategy Strategy) *Orchestrator {
	return &Orchestrator{strategy: strategy}
}

// Run converts every file in order and returns the sealed BatchResult.
// The options value is shared read-only by every request. Once started
// the batch runs to completion over the full list; a canceled context is
// recorded as failure for the remaining files rather than aborting the
// accounting.
func (o *Orchestrator) Run(ctx context.Context, files []FileToConvert, opts *EffectiveOptions) *BatchResult {
	result := &BatchResult{Outcomes: make([]ConversionOutcome, 0, len(files))}

	for _, f := range files {
		req := ConversionRequest{
			InputPath:  f.InputPath,
			OutputPath: f.OutputPath,
			Direction:  directionOf(o.strategy),
			Options:    opts,
		}

		start := time.Now()
		err := o.strategy.Convert(ctx, req)
		outcome := ConversionOutcome{
			Request:  req,
			Err:      err,
			Duration: time.Since(start),
		}

		result.Outcomes = append(result.Outcomes, outcome)
		if err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	return result
}

// directionOf derives the batch direction from the strategy's output.
func directionOf(s Strategy) Direction {
	if s.OutputExtension() == ".md" {
		return DirectionPDFToMarkdown
	}
	return DirectionMarkdownToPDF
}

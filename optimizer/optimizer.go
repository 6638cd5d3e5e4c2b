package optimizer

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/utils"
)

// DefaultRounds is the fixed number of predict-judge-improve rounds.
const DefaultRounds = 5

// RoundCallback is invoked after each completed round. isBest reports
// whether the round became the new best.
type RoundCallback func(c Candidate, isBest bool)

// Optimizer orchestrates the predict, judge, record, improve cycle and
// tracks the best-scoring candidate across rounds.
type Optimizer struct {
	predictor *Predictor
	judge     *Judge
	meta      *Metaprompter
	artifacts *ArtifactWriter
	debug     *utils.DebugManager
	logger    utils.Logger

	initial          PromptDocument
	rounds           int
	stopOnRegression bool
	callback         RoundCallback
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithRounds sets the number of rounds.
func WithRounds(rounds int) Option {
	return func(o *Optimizer) {
		o.rounds = rounds
	}
}

// WithInitialPrompt sets the round-zero prompt text.
func WithInitialPrompt(text string) Option {
	return func(o *Optimizer) {
		o.initial = ParsePromptDocument(text)
	}
}

// WithArtifactWriter enables persistence of per-round and final artifacts.
func WithArtifactWriter(w *ArtifactWriter) Option {
	return func(o *Optimizer) {
		o.artifacts = w
	}
}

// WithDebugManager records each round's prompt and the raw model output of
// every prediction for offline inspection.
func WithDebugManager(dm *utils.DebugManager) Option {
	return func(o *Optimizer) {
		o.debug = dm
	}
}

// WithRoundCallback registers a progress callback.
func WithRoundCallback(cb RoundCallback) Option {
	return func(o *Optimizer) {
		o.callback = cb
	}
}

// WithStopOnRegression ends the run as soon as a round scores no better
// than the best so far. Off by default: a full fixed-length run gives the
// complete score history.
func WithStopOnRegression() Option {
	return func(o *Optimizer) {
		o.stopOnRegression = true
	}
}

// New builds an Optimizer around a gateway. judgeModel and effort configure
// the evaluation side; pass a limiter to throttle all calls, or nil.
func New(gateway llm.LLM, judgeModel, effort string, limiter *rate.Limiter, logger utils.Logger, opts ...Option) *Optimizer {
	limited := LimitGateway(gateway, limiter)
	o := &Optimizer{
		predictor: NewPredictor(limited, logger),
		judge:     NewJudge(limited, judgeModel, effort, logger),
		meta:      NewMetaprompter(limited, judgeModel, "high", logger),
		logger:    logger,
		initial:   ParsePromptDocument(DefaultInitialPrompt),
		rounds:    DefaultRounds,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the optimization loop over the corpus and returns the final
// state. The state invariants hold on return even when an artifact write
// aborts the run early: history covers exactly the completed rounds and the
// best candidate carries the maximum of that history.
func (o *Optimizer) Run(ctx context.Context, items []corpus.Item) (*State, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	if o.rounds < 1 {
		return nil, fmt.Errorf("round count must be positive, got %d", o.rounds)
	}

	state := NewState()
	doc := o.initial

	for r := 0; r < o.rounds; r++ {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		o.logger.Info("round started", "round", r)
		if o.debug != nil {
			o.debug.LogPrompt(fmt.Sprintf("iteration_%d", r), doc.String())
		}

		predictions := o.predictor.Predict(ctx, items, doc.String())
		if o.debug != nil {
			for _, p := range predictions {
				o.debug.LogResponse(fmt.Sprintf("iteration_%d_%s", r, p.ItemID), p.RawText)
			}
		}

		judged := make([]JudgedPrediction, 0, len(items))
		var total float64
		for i, item := range items {
			jp := o.judge.Evaluate(ctx, item, predictions[i])
			o.logger.Debug("prediction judged",
				"id", item.ID, "score", jp.Score,
				"gold", item.GoldLabels, "predicted", predictions[i].Labels)
			judged = append(judged, jp)
			total += jp.Score
		}
		avg := total / float64(len(items))

		candidate := Candidate{
			Round:        r,
			Prompt:       doc,
			Judged:       judged,
			AverageScore: avg,
		}

		if o.artifacts != nil {
			if err := o.artifacts.WriteRound(candidate); err != nil {
				return state, err
			}
		}

		isBest := state.Record(candidate)
		if isBest {
			o.logger.Info("new best score", "round", r, "score", avg)
		} else {
			o.logger.Info("score did not improve", "round", r, "score", avg, "best", state.Best.AverageScore)
		}

		if o.callback != nil {
			o.callback(candidate, isBest)
		}

		if o.stopOnRegression && !isBest {
			o.logger.Info("stopping on regression", "round", r)
			break
		}

		if r < o.rounds-1 {
			next, err := o.meta.Propose(ctx, doc, judged)
			if err != nil {
				// Keep the current prompt; the next round re-measures it.
				o.logger.Warn("keeping current prompt", "round", r, "error", err)
			} else {
				doc = next
			}
		}
	}

	if o.artifacts != nil {
		if err := o.artifacts.WriteFinal(state); err != nil {
			return state, err
		}
	}

	o.logger.Info("optimization complete",
		"best_round", state.BestRound(), "best_score", state.Best.AverageScore)
	return state, nil
}

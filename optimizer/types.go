// Package optimizer implements an iterative LLM-as-judge prompt improvement
// loop: a candidate prompt is run over a validation corpus, every prediction
// is scored by a judge model, and a metaprompt turns the scored transcript
// into the next candidate. The best-scoring round is tracked across the run.
package optimizer

import (
	"github.com/marcward/promptsmith/corpus"
)

// SentinelLabel is the fallback label used when a model response cannot be
// parsed into a label list.
const SentinelLabel = "NA"

// Prediction is the parsed output of the prediction model for one corpus
// item. Labels is never empty: parse failures degrade to the sentinel list.
type Prediction struct {
	ItemID  string   `json:"item_id"`
	RawText string   `json:"raw_text"`
	Labels  []string `json:"labels"`
}

// JudgedPrediction pairs a prediction with the judge's verdict.
type JudgedPrediction struct {
	Item        corpus.Item `json:"item"`
	Prediction  Prediction  `json:"prediction"`
	Score       float64     `json:"score"`
	Explanation string      `json:"explanation"`
}

// Candidate is one round's prompt together with its judged predictions.
// AverageScore is the unweighted mean over all items.
type Candidate struct {
	Round        int                `json:"round"`
	Prompt       PromptDocument     `json:"prompt"`
	Judged       []JudgedPrediction `json:"judged"`
	AverageScore float64            `json:"average_score"`
}

// State tracks the best candidate and the per-round score history across a
// run. Only the optimization loop mutates it.
type State struct {
	Best    *Candidate
	History []float64
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// Record appends the candidate's score to the history and promotes it to
// best on strict improvement. On a tie the earlier round stays best, so the
// first round to reach a score keeps the title. Returns true if the
// candidate became the new best.
func (s *State) Record(c Candidate) bool {
	s.History = append(s.History, c.AverageScore)
	if s.Best == nil || c.AverageScore > s.Best.AverageScore {
		candidate := c
		s.Best = &candidate
		return true
	}
	return false
}

// BestRound returns the round index of the best candidate, or -1 before any
// round completes.
func (s *State) BestRound() int {
	if s.Best == nil {
		return -1
	}
	return s.Best.Round
}

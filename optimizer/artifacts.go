package optimizer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marcward/promptsmith/utils"
)

// ArtifactWriter persists per-round and final results of an optimization
// run as flat files. Write failures are fatal for the run.
type ArtifactWriter struct {
	dir    string
	logger utils.Logger
}

// NewArtifactWriter creates the output directory if needed.
func NewArtifactWriter(dir string, logger utils.Logger) (*ArtifactWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &ArtifactWriter{dir: dir, logger: logger}, nil
}

type evaluationRecord struct {
	ID          string   `json:"id"`
	Input       string   `json:"input"`
	GoldLabels  []string `json:"gold_labels"`
	Prediction  []string `json:"prediction"`
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation"`
}

// WriteRound persists the candidate prompt, the full judged-prediction list
// and a human-readable summary for one round.
func (w *ArtifactWriter) WriteRound(c Candidate) error {
	promptPath := filepath.Join(w.dir, fmt.Sprintf("system_prompt_iteration_%d.txt", c.Round))
	if err := os.WriteFile(promptPath, []byte(c.Prompt.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write round prompt: %w", err)
	}

	records := make([]evaluationRecord, 0, len(c.Judged))
	for _, jp := range c.Judged {
		records = append(records, evaluationRecord{
			ID:          jp.Item.ID,
			Input:       jp.Item.Input,
			GoldLabels:  jp.Item.GoldLabels,
			Prediction:  jp.Prediction.Labels,
			Score:       jp.Score,
			Explanation: jp.Explanation,
		})
	}
	evalJSON, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode evaluations: %w", err)
	}
	evalPath := filepath.Join(w.dir, fmt.Sprintf("evaluations_iteration_%d.json", c.Round))
	if err := os.WriteFile(evalPath, evalJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write evaluations: %w", err)
	}

	summary := fmt.Sprintf("Iteration: %d\nAverage Score: %.4f\n\nSystem Prompt:\n%s",
		c.Round, c.AverageScore, c.Prompt.String())
	summaryPath := filepath.Join(w.dir, fmt.Sprintf("summary_iteration_%d.txt", c.Round))
	if err := os.WriteFile(summaryPath, []byte(summary), 0o644); err != nil {
		return fmt.Errorf("failed to write round summary: %w", err)
	}

	w.logger.Debug("round artifacts written", "round", c.Round, "dir", w.dir)
	return nil
}

// WriteFinal persists the best prompt, the per-round score history as CSV
// and a final human-readable summary.
func (w *ArtifactWriter) WriteFinal(state *State) error {
	if state.Best == nil {
		return fmt.Errorf("no completed rounds to persist")
	}

	bestPath := filepath.Join(w.dir, "best_system_prompt.txt")
	if err := os.WriteFile(bestPath, []byte(state.Best.Prompt.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write best prompt: %w", err)
	}

	historyPath := filepath.Join(w.dir, "performance_history.csv")
	historyFile, err := os.Create(historyPath)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer historyFile.Close()

	writer := csv.NewWriter(historyFile)
	if err := writer.Write([]string{"Iteration", "Score"}); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for i, score := range state.History {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(score, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush history: %w", err)
	}

	var sb []byte
	sb = fmt.Appendf(sb, "Best Iteration: %d\nBest Score: %.4f\n\nPerformance History:\n",
		state.Best.Round, state.Best.AverageScore)
	for i, score := range state.History {
		sb = fmt.Appendf(sb, "Iteration %d: %.4f\n", i, score)
	}
	sb = fmt.Appendf(sb, "\nBest System Prompt:\n%s", state.Best.Prompt.String())
	finalPath := filepath.Join(w.dir, "final_summary.txt")
	if err := os.WriteFile(finalPath, sb, 0o644); err != nil {
		return fmt.Errorf("failed to write final summary: %w", err)
	}

	w.logger.Info("final artifacts written", "dir", w.dir, "best_round", state.Best.Round)
	return nil
}

// Package corpus loads labeled validation examples used to score candidate
// prompts.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/marcward/promptsmith/utils"
)

// Item is a single validation example: an input text and the gold label set
// it should map to. Items are immutable once loaded.
type Item struct {
	ID         string   `json:"id"`
	Input      string   `json:"input"`
	GoldLabels []string `json:"gold_labels"`
}

type record struct {
	ID         string          `json:"id"`
	Paper      string          `json:"paper"`
	InputText  string          `json:"input_text"`
	Abstract   string          `json:"abstract"`
	GoldLabels json.RawMessage `json:"gold_labels"`
}

// Load reads a JSON array of labeled records. The gold-label field may be a
// real list of strings or a string holding a list literal; either decodes to
// the same label set. A record whose labels cannot be decoded keeps its input
// with an empty label set. A missing or undecodable file is fatal.
func Load(path string, logger utils.Logger) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode corpus file %s: %w", path, err)
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = rec.Paper
		}
		if id == "" {
			id = strconv.Itoa(i)
		}
		input := rec.InputText
		if input == "" {
			input = rec.Abstract
		}

		items = append(items, Item{
			ID:         id,
			Input:      input,
			GoldLabels: decodeGoldLabels(rec.GoldLabels, id, logger),
		})
	}

	logger.Info("corpus loaded", "path", path, "items", len(items))
	return items, nil
}

// decodeGoldLabels handles both encodings of the gold-label field. Any
// failure degrades to an empty label set so one bad record cannot abort a
// whole load.
func decodeGoldLabels(raw json.RawMessage, id string, logger utils.Logger) []string {
	if len(raw) == 0 {
		logger.Warn("record has no gold labels", "id", id)
		return []string{}
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return cleanLabels(asList)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		parsed, err := ParseListLiteral(asString)
		if err != nil {
			logger.Warn("could not parse gold labels", "id", id, "value", asString, "error", err)
			return []string{}
		}
		return cleanLabels(parsed)
	}

	logger.Warn("unknown gold label encoding", "id", id, "value", string(raw))
	return []string{}
}

// cleanLabels strips whitespace and collapses exact duplicates while
// preserving first-seen order.
func cleanLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

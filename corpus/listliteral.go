package corpus

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ParseListLiteral parses a textual list of strings. Models and datasets mix
// JSON arrays (`["a", "b"]`) with Python-style literals (`['a', 'b']`), so a
// JSON decode is tried first and a quote-tolerant scan second. Elements are
// whitespace-stripped.
func ParseListLiteral(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("not a list literal: %q", s)
	}

	var out []string
	if err := json.Unmarshal([]byte(s), &out); err == nil {
		for i := range out {
			out[i] = strings.TrimSpace(out[i])
		}
		return out, nil
	}

	return scanListLiteral(s[1 : len(s)-1])
}

func scanListLiteral(inner string) ([]string, error) {
	var (
		out   []string
		runes = []rune(inner)
		i     = 0
	)

	for i < len(runes) {
		for i < len(runes) && (unicode.IsSpace(runes[i]) || runes[i] == ',') {
			i++
		}
		if i >= len(runes) {
			break
		}

		switch runes[i] {
		case '\'', '"':
			quote := runes[i]
			i++
			var sb strings.Builder
			closed := false
			for i < len(runes) {
				if runes[i] == '\\' && i+1 < len(runes) {
					sb.WriteRune(runes[i+1])
					i += 2
					continue
				}
				if runes[i] == quote {
					closed = true
					i++
					break
				}
				sb.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated string in list literal")
			}
			out = append(out, strings.TrimSpace(sb.String()))
		default:
			// Bare token: read up to the next comma.
			start := i
			for i < len(runes) && runes[i] != ',' {
				i++
			}
			token := strings.TrimSpace(string(runes[start:i]))
			if token != "" {
				out = append(out, token)
			}
		}
	}

	return out, nil
}

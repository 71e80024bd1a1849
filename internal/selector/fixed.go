package selector

import (
	"context"
	"strings"
)

const SelectAll = "all"

// Fixed answers with preset values. It drives headless runs and tests.
type Fixed struct {
	PageURL    string
	Extensions []string
}

func (f Fixed) URL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCancelled
	}
	return f.PageURL, nil
}

// Select keeps the preset extensions that are present among choices. The
// comparison ignores case and a missing leading dot.
func (f Fixed) Select(ctx context.Context, choices []Choice) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	wanted := make(map[string]bool)
	all := false
	for _, ext := range f.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == SelectAll {
			all = true
			continue
		}
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}
	var selected []string
	for _, c := range choices {
		if all || wanted[c.Value] {
			selected = append(selected, c.Value)
		}
	}
	return selected, nil
}

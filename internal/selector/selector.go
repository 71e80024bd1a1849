package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanq16/pagegrab/internal/scanner"
)

var ErrCancelled = errors.New("cancelled by user")

// Choice is one selectable extension group.
type Choice struct {
	Label string
	Value string
}

// Provider supplies the two answers the driver needs from the user.
type Provider interface {
	URL(ctx context.Context) (string, error)
	Select(ctx context.Context, choices []Choice) ([]string, error)
}

// ChoicesFor lists the index's groups sorted by extension.
func ChoicesFor(index scanner.LinkIndex) []Choice {
	exts := index.Extensions()
	choices := make([]Choice, 0, len(exts))
	for _, ext := range exts {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s (%d files)", ext, len(index[ext])),
			Value: ext,
		})
	}
	return choices
}

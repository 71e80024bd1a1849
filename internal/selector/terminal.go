package selector

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/tanq16/pagegrab/internal/output"
)

type Terminal struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewTerminal prompts on the given streams. Line-based accessible prompts are
// used when stdin is not a TTY.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:         in,
		out:        out,
		accessible: !output.IsTerminal(in),
	}
}

func (t *Terminal) URL(ctx context.Context) (string, error) {
	var pageURL string
	field := huh.NewInput().
		Title("Enter the URL of the page to analyze:").
		Value(&pageURL)
	if err := t.run(ctx, huh.NewForm(huh.NewGroup(field))); err != nil {
		return "", err
	}
	return pageURL, nil
}

func (t *Terminal) Select(ctx context.Context, choices []Choice) ([]string, error) {
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value))
	}
	var selected []string
	field := huh.NewMultiSelect[string]().
		Title("Select extensions to download").
		Description("arrows - navigate, space/x - select, enter - confirm").
		Options(options...).
		Value(&selected)
	if err := t.run(ctx, huh.NewForm(huh.NewGroup(field))); err != nil {
		return nil, err
	}
	return selected, nil
}

func (t *Terminal) run(ctx context.Context, form *huh.Form) error {
	form = form.WithInput(t.in).WithOutput(t.out).WithAccessible(t.accessible)
	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), ctx.Err() != nil:
		return ErrCancelled
	default:
		return err
	}
}

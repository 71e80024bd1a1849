package output

import (
	"fmt"
	"io"
	"os"
)

// Printer writes user-facing lines. Progress goes to Out, failures to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func NewPrinter(out, errw io.Writer) *Printer {
	return &Printer{Out: out, Err: errw}
}

func Stdio() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

func (p *Printer) PrintSuccess(text string) {
	fmt.Fprintln(p.Out, successStyle.Render(text))
}
func (p *Printer) PrintPending(text string) {
	fmt.Fprintln(p.Out, pendingStyle.Render(text))
}
func (p *Printer) PrintInfo(text string) {
	fmt.Fprintln(p.Out, infoStyle.Render(text))
}
func (p *Printer) PrintWarning(text string) {
	fmt.Fprintln(p.Out, warningStyle.Render(text))
}
func (p *Printer) PrintError(text string) {
	fmt.Fprintln(p.Err, errorStyle.Render(text))
}
func (p *Printer) PrintRaw(text string) {
	fmt.Fprintln(p.Out, text)
}

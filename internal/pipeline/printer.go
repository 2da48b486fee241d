package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes pipeline progress to stderr and the final result to
// stdout. Color detection follows the stderr stream (lipgloss renderer
// bound to it), so piping stdout never changes styling and NO_COLOR /
// CLICOLOR / TERM=dumb are honored. Warnings and errors print even in
// quiet mode.
type Printer struct {
	out   io.Writer
	errw  io.Writer
	quiet bool

	info    lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	success lipgloss.Style
}

func newPrinter(quiet bool) *Printer {
	return newPrinterTo(os.Stdout, os.Stderr, quiet)
}

func newPrinterTo(out, errw io.Writer, quiet bool) *Printer {
	r := lipgloss.NewRenderer(errw)
	return &Printer{
		out:     out,
		errw:    errw,
		quiet:   quiet,
		info:    r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Infof reports step progress. Suppressed in quiet mode.
func (p *Printer) Infof(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.errw, p.info.Render(fmt.Sprintf(format, args...)))
}

// Warnf reports a non-fatal condition the user should know about.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.errw, p.warn.Render("warning:")+" "+fmt.Sprintf(format, args...))
}

// Errorf reports an error-level condition. The caller decides whether the
// pipeline continues (metadata failures) or stops (fatal categories).
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.errw, p.fail.Render("error:")+" "+fmt.Sprintf(format, args...))
}

// Successf reports the end-of-run summary. Suppressed in quiet mode.
func (p *Printer) Successf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.errw, p.success.Render(fmt.Sprintf(format, args...)))
}

// Result prints the final destination path to stdout, quiet or not.
func (p *Printer) Result(path string) {
	fmt.Fprintln(p.out, path)
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/collide/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printer writes command output, styled only when it goes to a terminal
// and colour is enabled.
type printer struct {
	io.Writer
	color bool
}

func newPrinter(w io.Writer) printer {
	color := !settings.GetBool("no-color")
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color = false
	}
	return printer{Writer: w, color: color}
}

func (p printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p printer) title(text string) string { return p.render(titleStyle, text) }
func (p printer) pass(text string) string  { return p.render(passStyle, text) }
func (p printer) fail(text string) string  { return p.render(failStyle, text) }
func (p printer) warn(text string) string  { return p.render(warnStyle, text) }
func (p printer) dim(text string) string   { return p.render(dimStyle, text) }

// outcome describes how a run ended.
func (p printer) outcome(won, gameOver bool) string {
	switch {
	case won:
		return p.pass("won")
	case gameOver:
		return p.fail("game over")
	default:
		return p.warn("running")
	}
}

func fingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

// summary prints a run summary as aligned label/value rows.
func (p printer) summary(title string, s sim.Summary) {
	rows := [][2]string{
		{"Simulation", fmt.Sprintf("%s (%s)", title, s.GameID)},
		{"Run", s.RunID.String()},
		{"Seed", fmt.Sprint(s.Seed)},
		{"Ticks", fmt.Sprint(s.Ticks)},
		{"Score", fmt.Sprint(s.Score)},
		{"Result", p.outcome(s.Won, s.GameOver)},
		{"Fingerprint", fingerprint(s.Fingerprint)},
		{"Duration", s.Duration.Round(time.Microsecond).String()},
	}
	for _, row := range rows {
		fmt.Fprintf(p, "  %s  %s\n", p.dim(fmt.Sprintf("%-11s", row[0])), row[1])
	}
}

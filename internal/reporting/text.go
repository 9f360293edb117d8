package reporting

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
)

const (
	stageBanner = "**************************************************"
	runBanner   = "-----------------------------------------------------------"
)

// TextPresenter prints the bracket for a terminal. Entrants that reached a
// round by an upset are shown in upper case, everyone else in lower case.
type TextPresenter struct {
	w       *bufio.Writer
	started bool
	err     error
}

// NewTextPresenter returns a TextPresenter writing to w.
func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: bufio.NewWriter(w)}
}

func (p *TextPresenter) StageStarted(label string, _ bracket.StageKind) {
	if !p.started {
		p.started = true
		p.printf("\n\n%s\n%s\n%s\n\n\n", runBanner, centered("START", len(runBanner)), runBanner)
	}
	p.printf("%s\n%s\n%s\n", stageBanner, label, stageBanner)
}

func (p *TextPresenter) RoundStarted(r bracket.Round) {
	if r.Label != r.Stage {
		p.printf("%s\n", r.Label)
	}

	lefts := make([]string, len(r.Matchups))
	width := 0
	for i, m := range r.Matchups {
		lefts[i] = fmt.Sprintf("[%s] %s (%.1f%%)", m.Left.Entrant.Seed, DisplayName(m.Left), m.LeftProb)
		width = max(width, stringWidth(lefts[i]))
	}
	for i, m := range r.Matchups {
		p.printf("%s vs. [%s] %s (%.1f%%)\n", padRight(lefts[i], width),
			m.Right.Entrant.Seed, DisplayName(m.Right), m.RightProb)
	}
	p.printf("\n")
}

func (p *TextPresenter) RoundCompleted(bracket.Round, []models.MatchResult, models.Lineup) {}

func (p *TextPresenter) StageCompleted(s bracket.Stage) {
	switch s.Kind {
	case bracket.StageDivision:
		p.printf("%s Final Four\n%s\n\n", s.Label, DisplayName(s.Winners[0]))
	case bracket.StageChampion:
		p.printf("%s\n", DisplayName(s.Winners[0]))
	}
}

// Flush writes the closing banner and flushes buffered output.
func (p *TextPresenter) Flush() error {
	if p.started {
		p.printf("\n%s\n%s\n%s\n", runBanner, centered("END", len(runBanner)), runBanner)
	}
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

func (p *TextPresenter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// DisplayName formats an entrant for console output: upper case when it got
// here by an upset, lower case otherwise.
func DisplayName(s models.Seat) string {
	if s.Upset {
		return strings.ToUpper(s.Entrant.Name)
	}
	return strings.ToLower(s.Entrant.Name)
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := stringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func centered(s string, width int) string {
	pad := (width - stringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

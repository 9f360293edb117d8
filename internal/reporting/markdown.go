package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
)

// MarkdownPresenter renders the tournament as a markdown document with one
// table per round. Output is written on Flush.
type MarkdownPresenter struct {
	w io.Writer
	b strings.Builder
}

// NewMarkdownPresenter returns a MarkdownPresenter writing to w.
func NewMarkdownPresenter(w io.Writer) *MarkdownPresenter {
	p := &MarkdownPresenter{w: w}
	p.b.WriteString("# Tournament\n\n")
	return p
}

func (p *MarkdownPresenter) StageStarted(label string, _ bracket.StageKind) {
	fmt.Fprintf(&p.b, "## %s\n\n", escapeMarkdown(label))
}

func (p *MarkdownPresenter) RoundStarted(bracket.Round) {}

func (p *MarkdownPresenter) RoundCompleted(r bracket.Round, results []models.MatchResult, _ models.Lineup) {
	if r.Label != r.Stage {
		fmt.Fprintf(&p.b, "### %s\n\n", escapeMarkdown(r.Label))
	}
	p.b.WriteString("| Seed | Entrant | Win % | | Seed | Entrant | Win % | Winner |\n")
	p.b.WriteString("|---:|---|---:|:---:|---:|---|---:|---|\n")
	for i, res := range results {
		m := r.Matchups[i]
		winner := "**" + escapeMarkdown(res.Winner.Name) + "**"
		if res.Upset {
			winner += " (upset)"
		}
		fmt.Fprintf(&p.b, "| %s | %s | %.1f%% | vs. | %s | %s | %.1f%% | %s |\n",
			escapeMarkdown(m.Left.Entrant.Seed), seatMarkdown(m.Left), m.LeftProb,
			escapeMarkdown(m.Right.Entrant.Seed), seatMarkdown(m.Right), m.RightProb,
			winner)
	}
	p.b.WriteString("\n")
}

func (p *MarkdownPresenter) StageCompleted(s bracket.Stage) {
	switch s.Kind {
	case bracket.StageDivision:
		fmt.Fprintf(&p.b, "**%s champion:** %s\n\n", escapeMarkdown(s.Label), seatMarkdown(s.Winners[0]))
	case bracket.StageChampion:
		w := s.Winners[0]
		fmt.Fprintf(&p.b, "🏆 **%s** (%s, seed %s)\n", escapeMarkdown(w.Entrant.Name),
			escapeMarkdown(w.Entrant.Division), escapeMarkdown(w.Entrant.Seed))
	}
}

// Flush writes the document.
func (p *MarkdownPresenter) Flush() error {
	_, err := io.WriteString(p.w, p.b.String())
	return err
}

// seatMarkdown italicizes entrants that arrived by an upset.
func seatMarkdown(s models.Seat) string {
	name := escapeMarkdown(s.Entrant.Name)
	if s.Upset {
		return "_" + name + "_"
	}
	return name
}

var markdownEscaper = strings.NewReplacer(`|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Package spinner draws a one-line progress indicator on a terminal.
package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Spinner animates a message on w until Stop is called. The message can be
// changed while it runs.
type Spinner struct {
	w        io.Writer
	mu       sync.Mutex
	message  string
	width    int
	done     chan struct{}
	cleared  chan struct{}
	stopOnce sync.Once
}

// Start begins drawing message on w.
func Start(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		message: message,
		done:    make(chan struct{}),
		cleared: make(chan struct{}),
	}
	go s.loop()
	return s
}

// Update replaces the message shown next to the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop halts the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.cleared
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.done:
			s.draw("\r%*s\r", s.width, "")
			close(s.cleared)
			return
		case <-ticker.C:
			s.mu.Lock()
			line := frames[i%len(frames)] + " " + s.message
			s.mu.Unlock()
			// pad over whatever a longer previous message left behind
			w := runewidth.StringWidth(line)
			s.draw("\r%s%*s", line, max(s.width-w, 0), "")
			s.width = max(s.width, w)
		}
	}
}

func (s *Spinner) draw(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...) //nolint:errcheck
}

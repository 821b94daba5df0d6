package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner redraws "⠋ message 1.2s" on stderr until Stop is called or the
// parent context ends. Start must be called at most once.
type spinner struct {
	message string
	out     io.Writer

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	begin   time.Time
	width   int // printed width of the last frame
}

func newSpinner(ctx context.Context, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		out:     os.Stderr,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

func (s *spinner) Start() {
	s.begin = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
				return
			case <-ticker.C:
				line := styleSpinner.Render(spinnerFrames[i%len(spinnerFrames)]) + " " +
					styleMuted.Render(fmt.Sprintf("%s %s", s.message, time.Since(s.begin).Round(100*time.Millisecond)))
				s.width = max(s.width, lipgloss.Width(line))
				fmt.Fprint(s.out, "\r"+line)
			}
		}
	}()
}

// Stop clears the line and returns the time since Start. Calling it again,
// or after the parent context ended, is harmless.
func (s *spinner) Stop() time.Duration {
	s.once.Do(func() {
		s.cancel()
		if !s.begin.IsZero() {
			<-s.stopped
		}
	})
	if s.begin.IsZero() {
		return 0
	}
	return time.Since(s.begin)
}

// Cancelled reports whether the parent context ended, as opposed to a
// regular Stop.
func (s *spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

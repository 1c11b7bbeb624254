package ui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var frames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner displays an animated progress indicator on stderr while a fetch
// is in flight.
type Spinner struct {
	mu   sync.Mutex
	msg  string
	done chan struct{}
}

func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start begins the animation with the given message.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go s.run(done)
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	s.mu.Unlock()

	fmt.Fprint(os.Stderr, "\r\033[K")
}

func (s *Spinner) run(done chan struct{}) {
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-tick.C:
			s.mu.Lock()
			msg := s.msg
			s.mu.Unlock()
			fmt.Fprintf(os.Stderr, "\r\033[K%c %s", frames[i%len(frames)], msg)
		}
	}
}

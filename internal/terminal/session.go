package terminal

import (
	"errors"
	"strings"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/busy"
)

var (
	ErrBusy       = errors.New("terminal is processing a command")
	ErrEmptyInput = errors.New("empty command")
)

// Session is one open terminal: transcript, dispatcher and the busy latch
// that keeps a second command out while the first is still playing.
type Session struct {
	transcript Transcript
	dispatcher *Dispatcher
	latch      busy.Latch
	delays     Delays
}

func NewSession(b *brand.Brand, delays Delays) *Session {
	s := &Session{
		dispatcher: NewDispatcher(b),
		delays:     delays,
	}
	for _, l := range b.Boot {
		s.transcript.Append(Line{Origin: ParseOrigin(l.Origin), Content: l.Content})
	}
	return s
}

// Submit records input as a user line and returns the steps of the reply.
// The session stays busy until Done is called.
func (s *Session) Submit(input string) ([]Step, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	if !s.latch.TryAcquire() {
		return nil, ErrBusy
	}
	s.transcript.Append(Line{Origin: OriginUser, Content: input})
	return Plan(s.dispatcher.Respond(input), s.delays), nil
}

// Apply plays one step onto the transcript.
func (s *Session) Apply(step Step) {
	if step.Clear {
		s.transcript.Reset()
		return
	}
	s.transcript.Append(step.Line)
}

func (s *Session) Done() {
	s.latch.Release()
}

func (s *Session) Busy() bool {
	return s.latch.Busy()
}

func (s *Session) Transcript() *Transcript {
	return &s.transcript
}

func (s *Session) Dispatcher() *Dispatcher {
	return s.dispatcher
}

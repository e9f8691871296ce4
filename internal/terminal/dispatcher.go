package terminal

import (
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/avolabs/avoterm/internal/brand"
)

// ClearCommand wipes the transcript instead of answering.
const ClearCommand = "clear"

type ReplyKind int

const (
	ReplyCanned ReplyKind = iota
	ReplyClear
	ReplyFallback
)

type Reply struct {
	Kind  ReplyKind
	Lines []string
	// Suggestion is the closest known keyword for unrecognised input, if any.
	Suggestion string
}

// Dispatcher maps keywords to canned answers. It holds no state.
type Dispatcher struct {
	responses map[string]string
	keywords  []string
	fallback  []string
}

func NewDispatcher(b *brand.Brand) *Dispatcher {
	d := &Dispatcher{
		responses: make(map[string]string, len(b.Responses)),
		fallback:  append([]string(nil), b.Fallback...),
	}
	for k, v := range b.Responses {
		d.responses[k] = v
		d.keywords = append(d.keywords, k)
	}
	d.keywords = append(d.keywords, ClearCommand)
	sort.Strings(d.keywords)
	return d
}

// Keywords lists recognised commands, sorted.
func (d *Dispatcher) Keywords() []string {
	return append([]string(nil), d.keywords...)
}

// Normalize is the lookup form of raw input.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func (d *Dispatcher) Respond(input string) Reply {
	cmd := Normalize(input)
	if cmd == ClearCommand {
		return Reply{Kind: ReplyClear}
	}
	if text, ok := d.responses[cmd]; ok {
		return Reply{Kind: ReplyCanned, Lines: strings.Split(text, "\n")}
	}
	return Reply{
		Kind:       ReplyFallback,
		Lines:      append([]string(nil), d.fallback...),
		Suggestion: d.suggest(cmd),
	}
}

func (d *Dispatcher) suggest(cmd string) string {
	if cmd == "" {
		return ""
	}
	matches := fuzzy.Find(cmd, d.keywords)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Delays are supplied by the caller; the dispatcher never sleeps.
type Delays struct {
	Line     time.Duration // before each typed line
	Fallback time.Duration // between the fallback's first and second message
}

var DefaultDelays = Delays{Line: 50 * time.Millisecond, Fallback: time.Second}

// Step is one timed effect on the transcript.
type Step struct {
	Delay time.Duration
	Line  Line
	Clear bool
}

// Plan turns a reply into the ordered steps that play it out.
func Plan(r Reply, delays Delays) []Step {
	switch r.Kind {
	case ReplyClear:
		return []Step{{Clear: true}}
	case ReplyFallback:
		var steps []Step
		for i, text := range r.Lines {
			delay := delays.Line
			if i > 0 {
				delay += delays.Fallback
			}
			steps = append(steps, Step{Delay: delay, Line: Line{Origin: OriginSystem, Content: text}})
		}
		if r.Suggestion != "" {
			steps = append(steps, Step{
				Line: Line{Origin: OriginWarning, Content: `Did you mean "` + r.Suggestion + `"?`},
			})
		}
		return steps
	default:
		steps := make([]Step, 0, len(r.Lines))
		for _, text := range r.Lines {
			steps = append(steps, Step{Delay: delays.Line, Line: Line{Origin: OriginSystem, Content: text}})
		}
		return steps
	}
}

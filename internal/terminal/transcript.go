// Package terminal implements the fake AI terminal: a canned-response
// dispatcher, the transcript it writes to, and the session that gates input.
package terminal

import "strings"

type Origin int

const (
	OriginSystem Origin = iota
	OriginUser
	OriginWarning
)

func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginWarning:
		return "warning"
	default:
		return "system"
	}
}

// ParseOrigin maps a brand boot-line origin to an Origin.
func ParseOrigin(s string) Origin {
	switch s {
	case "user":
		return OriginUser
	case "warning", "warn":
		return OriginWarning
	default:
		return OriginSystem
	}
}

type Line struct {
	Origin  Origin
	Content string
}

// Prefix is the marker rendered before a line.
func (l Line) Prefix() string {
	if l.Origin == OriginUser {
		return "> "
	}
	return "$ "
}

func (l Line) String() string {
	return l.Prefix() + l.Content
}

// Transcript is the ordered list of displayed lines. It only grows, except
// for Reset which the clear command uses.
type Transcript struct {
	lines []Line
}

func (t *Transcript) Append(lines ...Line) {
	t.lines = append(t.lines, lines...)
}

func (t *Transcript) Reset() {
	t.lines = nil
}

func (t *Transcript) Len() int {
	return len(t.lines)
}

// Lines returns a copy.
func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Render joins the lines with their prefixes; style may be nil.
func (t *Transcript) Render(style func(Line) string) string {
	var sb strings.Builder
	for i, l := range t.lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		if style != nil {
			sb.WriteString(style(l))
		} else {
			sb.WriteString(l.String())
		}
	}
	return sb.String()
}

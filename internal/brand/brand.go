// Package brand holds the theme and copy of a dashboard. The dashboard and
// the terminal are written once; every name, colour and canned line comes
// from a Brand record.
package brand

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/avolabs/avoterm/assets"
)

var ErrUnknownBrand = errors.New("unknown brand")

type Palette struct {
	Primary string `yaml:"primary"`
	Accent  string `yaml:"accent"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Muted   string `yaml:"muted"`
}

// BootLine seeds the terminal transcript. Origin is "system", "user" or "warning".
type BootLine struct {
	Origin  string `yaml:"origin"`
	Content string `yaml:"content"`
}

type Panel struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

type Tool struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status"`
	Desc   string `yaml:"desc"`
}

type Brand struct {
	Name           string            `yaml:"name"`
	Tagline        string            `yaml:"tagline"`
	SocialURL      string            `yaml:"social_url"`
	Palette        Palette           `yaml:"palette"`
	Boot           []BootLine        `yaml:"boot"`
	StatusMessages []string          `yaml:"status_messages"`
	Panels         []Panel           `yaml:"panels"`
	Upcoming       []Tool            `yaml:"upcoming"`
	Responses      map[string]string `yaml:"responses"`
	Fallback       []string          `yaml:"fallback"`
}

// Parse decodes and validates a YAML brand record.
func Parse(data []byte) (*Brand, error) {
	var b Brand
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse brand: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Brand) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("brand: name is required")
	}
	if len(b.StatusMessages) == 0 {
		return fmt.Errorf("brand %s: at least one status message is required", b.Name)
	}
	if len(b.Fallback) == 0 {
		return fmt.Errorf("brand %s: fallback lines are required", b.Name)
	}
	for key := range b.Responses {
		if key != strings.ToLower(strings.TrimSpace(key)) {
			return fmt.Errorf("brand %s: response keyword %q must be lowercase", b.Name, key)
		}
	}
	for _, l := range b.Boot {
		switch l.Origin {
		case "system", "user", "warning":
		default:
			return fmt.Errorf("brand %s: unknown boot line origin %q", b.Name, l.Origin)
		}
	}
	return nil
}

// Load reads an embedded brand by name.
func Load(name string) (*Brand, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	data, err := assets.GetBrand(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBrand, name)
		}
		return nil, err
	}
	return Parse(data)
}

func Names() ([]string, error) {
	return assets.BrandNames()
}

// StatusTicker picks the rotating header message.
type StatusTicker struct {
	messages []string
	rng      *rand.Rand
}

func NewStatusTicker(b *Brand, rng *rand.Rand) *StatusTicker {
	return &StatusTicker{messages: b.StatusMessages, rng: rng}
}

// First is the message shown before the first tick.
func (t *StatusTicker) First() string {
	return t.messages[0]
}

// Next returns a random message; repeats are allowed.
func (t *StatusTicker) Next() string {
	return t.messages[t.rng.Intn(len(t.messages))]
}

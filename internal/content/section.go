package content

import (
	"errors"
	"fmt"
	"strings"
)

// Section names one self-contained region of the landing page.
type Section string

const (
	SectionNavigation Section = "navigation"
	SectionHero       Section = "hero"
	SectionPricing    Section = "pricing"
	SectionFooter     Section = "footer"
)

// ErrUnknownSection is returned for section names outside Sections().
var ErrUnknownSection = errors.New("unknown section")

var sections = []Section{SectionNavigation, SectionHero, SectionPricing, SectionFooter}

// Sections lists the page sections in render order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ParseSection validates a section name, ignoring case and surrounding space.
func ParseSection(raw string) (Section, error) {
	name := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range sections {
		if s == name {
			return s, nil
		}
	}
	return "", unknownSection(raw)
}

func unknownSection(raw string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}

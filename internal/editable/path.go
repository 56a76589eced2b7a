package editable

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a field name or a 0-based index.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Path addresses a single leaf inside a section configuration, e.g.
// plans[1].features[2] or navItems[0].href.
type Path struct {
	segs []Segment
}

// Root starts a path at a top-level field.
func Root(field string) Path {
	return Path{segs: []Segment{{Name: field}}}
}

// Field returns a new path extended with a field segment.
func (p Path) Field(name string) Path {
	return p.with(Segment{Name: name})
}

// Index returns a new path extended with an index segment.
func (p Path) Index(i int) Path {
	return p.with(Segment{Index: i, IsIndex: true})
}

// with never appends into p's backing array, so sibling paths built from the
// same prefix stay independent.
func (p Path) with(seg Segment) Path {
	out := make([]Segment, len(p.segs), len(p.segs)+1)
	copy(out, p.segs)
	return Path{segs: append(out, seg)}
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len reports the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p.segs) == 0
}

// Head returns the top-level field name, the unit replaced by a shallow merge.
func (p Path) Head() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[0].Name
}

// Last returns the final field name of the path, skipping trailing indices.
func (p Path) Last() string {
	for i := len(p.segs) - 1; i >= 0; i-- {
		if !p.segs[i].IsIndex {
			return p.segs[i].Name
		}
	}
	return ""
}

// String renders the path using the dot/bracket grammar.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p.segs {
		if seg.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePath parses the dot/bracket grammar produced by Path.String.
func ParsePath(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segs []Segment
	i := 0
	expectName := true
	for i < len(raw) {
		switch {
		case expectName:
			start := i
			for i < len(raw) && raw[i] != '.' && raw[i] != '[' {
				if !isNameByte(raw[i]) {
					return Path{}, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidPath, raw[i], i, raw)
				}
				i++
			}
			if i == start {
				return Path{}, fmt.Errorf("%w: empty field name at offset %d in %q", ErrInvalidPath, start, raw)
			}
			segs = append(segs, Segment{Name: raw[start:i]})
			expectName = false
		case raw[i] == '.':
			i++
			if i == len(raw) {
				return Path{}, fmt.Errorf("%w: trailing dot in %q", ErrInvalidPath, raw)
			}
			expectName = true
		case raw[i] == '[':
			end := strings.IndexByte(raw[i:], ']')
			if end < 0 {
				return Path{}, fmt.Errorf("%w: unterminated index in %q", ErrInvalidPath, raw)
			}
			digits := raw[i+1 : i+end]
			idx, err := parseIndex(digits)
			if err != nil {
				return Path{}, fmt.Errorf("%w: index %q in %q: %v", ErrInvalidPath, digits, raw, err)
			}
			segs = append(segs, Segment{Index: idx, IsIndex: true})
			i += end + 1
		default:
			return Path{}, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidPath, raw[i], i, raw)
		}
	}

	return Path{segs: segs}, nil
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(raw string) Path {
	p, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func parseIndex(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("missing digits")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("not a non-negative integer")
		}
	}
	return strconv.Atoi(digits)
}

func isNameByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

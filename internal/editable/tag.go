package editable

import (
	"reflect"
	"strings"
)

// Attribute names under which rendered markup exposes editable paths.
const (
	AttrText = "data-editable"
	AttrHref = "data-editable-href"
)

// Kind distinguishes display text from navigation targets.
type Kind string

const (
	KindText Kind = "text"
	KindHref Kind = "href"
)

// Text is a display string annotated with the path it was read from.
type Text struct {
	Path  Path
	Value string
}

// Link is a navigation target annotated with the path it was read from. A
// link's label is tagged separately as a Text.
type Link struct {
	Path Path
	Href string
}

// TagText annotates value with p. It never fails.
func TagText(p Path, value string) Text {
	return Text{Path: p, Value: value}
}

// TagLink annotates href with p. It never fails.
func TagLink(p Path, href string) Link {
	return Link{Path: p, Href: href}
}

// Attr returns the attribute name that carries t's path.
func (t Text) Attr() string { return AttrText }

// Attr returns the attribute name that carries l's path.
func (l Link) Attr() string { return AttrHref }

// KindOf classifies a path by its last field name: href, ctaHref, logoHref and
// the like are navigation targets, everything else is text.
func KindOf(p Path) Kind {
	if strings.HasSuffix(strings.ToLower(p.Last()), "href") {
		return KindHref
	}
	return KindText
}

// Field is one string leaf of a configuration.
type Field struct {
	Path  Path   `json:"path"`
	Value string `json:"value"`
	Kind  Kind   `json:"kind"`
}

// Leaves lists every editable string leaf of cfg in declaration order.
func Leaves(cfg any) []Field {
	var out []Field
	v := indirect(reflect.ValueOf(cfg))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return out
	}
	collect(v, Path{}, &out)
	return out
}

func collect(v reflect.Value, at Path, out *[]Field) {
	v = indirect(v)
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.String:
		if !at.IsZero() {
			*out = append(*out, Field{Path: at, Value: v.String(), Kind: KindOf(at)})
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			name := fieldName(sf)
			if !sf.IsExported() || name == "" || isExcluded(sf) {
				continue
			}
			var next Path
			if at.IsZero() {
				next = Root(name)
			} else {
				next = at.Field(name)
			}
			collect(v.Field(i), next, out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			collect(v.Index(i), at.Index(i), out)
		}
	}
}

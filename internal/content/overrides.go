package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownField is returned when pinning a field that the section does not have.
var ErrUnknownField = errors.New("unknown section field")

// Overrides is the caller-supplied partial configuration of every section,
// as read from an overrides document:
//
//	hero:
//	  headline: Ship faster
//	pricing:
//	  plans: [...]
type Overrides struct {
	Navigation NavigationOverride `yaml:"navigation,omitempty"`
	Hero       HeroOverride       `yaml:"hero,omitempty"`
	Pricing    PricingOverride    `yaml:"pricing,omitempty"`
	Footer     FooterOverride     `yaml:"footer,omitempty"`
}

// ParseOverrides decodes a YAML overrides document. Unknown keys are rejected
// so shape drift surfaces at load time instead of silently rendering defaults.
// An empty document yields empty overrides.
func ParseOverrides(data []byte) (Overrides, error) {
	var ov Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ov); err != nil && !errors.Is(err, io.EOF) {
		return Overrides{}, fmt.Errorf("parse overrides: %w", err)
	}
	return ov, nil
}

// LoadOverrides reads and decodes an overrides file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("read overrides: %w", err)
	}
	return ParseOverrides(data)
}

// Effective merges every section's overrides over its defaults.
func (o Overrides) Effective() Page {
	return Page{
		Navigation: MergeNavigation(DefaultNavigation(), o.Navigation),
		Hero:       MergeHero(DefaultHero(), o.Hero),
		Pricing:    MergePricing(DefaultPricing(), o.Pricing),
		Footer:     MergeFooter(DefaultFooter(), o.Footer),
	}
}

// Clone returns a deep copy of o.
func (o Overrides) Clone() Overrides {
	out := o

	out.Navigation.NavItems = cloneSlice(o.Navigation.NavItems)
	out.Hero.Features = cloneSlice(o.Hero.Features)
	out.Pricing.Plans = clonePlans(o.Pricing.Plans)
	out.Footer.QuickLinks = cloneSlice(o.Footer.QuickLinks)
	out.Footer.Resources = cloneSlice(o.Footer.Resources)
	out.Footer.Legal = cloneSlice(o.Footer.Legal)
	out.Footer.SocialLinks = cloneSlice(o.Footer.SocialLinks)
	out.Footer.BottomLinks = cloneSlice(o.Footer.BottomLinks)

	return out
}

// Reset drops every override of section.
func (o *Overrides) Reset(section Section) error {
	switch section {
	case SectionNavigation:
		o.Navigation = NavigationOverride{}
	case SectionHero:
		o.Hero = HeroOverride{}
	case SectionPricing:
		o.Pricing = PricingOverride{}
	case SectionFooter:
		o.Footer = FooterOverride{}
	default:
		return unknownSection(string(section))
	}
	return nil
}

// Pin copies the top-level field named field from cfg (an effective section
// config, or a pointer to one) into the section's override. Because merging is
// shallow, this is how a single-leaf edit becomes a whole-field override.
func (o *Overrides) Pin(section Section, cfg any, field string) error {
	var target reflect.Value
	switch section {
	case SectionNavigation:
		target = reflect.ValueOf(&o.Navigation).Elem()
	case SectionHero:
		target = reflect.ValueOf(&o.Hero).Elem()
	case SectionPricing:
		target = reflect.ValueOf(&o.Pricing).Elem()
	case SectionFooter:
		target = reflect.ValueOf(&o.Footer).Elem()
	default:
		return unknownSection(string(section))
	}

	src := reflect.ValueOf(cfg)
	for src.Kind() == reflect.Pointer {
		src = src.Elem()
	}
	if src.Kind() != reflect.Struct {
		return fmt.Errorf("pin %s.%s: config is %s, not a struct", section, field, src.Kind())
	}

	from, ok := fieldByYAMLName(src, field)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
	}
	to, ok := fieldByYAMLName(target, field)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
	}

	switch to.Kind() {
	case reflect.Pointer:
		if to.Type().Elem() != from.Type() {
			return fmt.Errorf("pin %s.%s: type mismatch %s vs %s", section, field, to.Type(), from.Type())
		}
		ptr := reflect.New(from.Type())
		ptr.Elem().Set(from)
		to.Set(ptr)
	case reflect.Slice:
		if to.Type() != from.Type() {
			return fmt.Errorf("pin %s.%s: type mismatch %s vs %s", section, field, to.Type(), from.Type())
		}
		copied := reflect.MakeSlice(from.Type(), from.Len(), from.Len())
		reflect.Copy(copied, from)
		to.Set(copied)
	default:
		return fmt.Errorf("pin %s.%s: unsupported override kind %s", section, field, to.Kind())
	}
	return nil
}

func fieldByYAMLName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

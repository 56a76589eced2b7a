package content

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMergeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("present scalars win, absent ones fall back", prop.ForAll(
		func(headline string, setHeadline bool, cta string, setCTA bool) bool {
			var ov HeroOverride
			if setHeadline {
				ov.Headline = String(headline)
			}
			if setCTA {
				ov.CTAText = String(cta)
			}

			got := MergeHero(DefaultHero(), ov)
			def := DefaultHero()

			wantHeadline := def.Headline
			if setHeadline {
				wantHeadline = headline
			}
			wantCTA := def.CTAText
			if setCTA {
				wantCTA = cta
			}
			return got.Headline == wantHeadline &&
				got.CTAText == wantCTA &&
				got.Description == def.Description &&
				reflect.DeepEqual(got.Features, def.Features)
		},
		gen.AnyString(),
		gen.Bool(),
		gen.AnyString(),
		gen.Bool(),
	))

	properties.Property("merging never writes through to defaults", prop.ForAll(
		func(labels []string) bool {
			items := make([]LinkItem, len(labels))
			for i, l := range labels {
				items[i] = LinkItem{Label: l, Href: "#" + l}
			}
			got := MergeNavigation(DefaultNavigation(), NavigationOverride{NavItems: items})
			for i := range got.NavItems {
				got.NavItems[i].Label = "mutated"
			}
			return reflect.DeepEqual(DefaultNavigation().NavItems, defaultNavigation.NavItems) &&
				DefaultNavigation().NavItems[0].Label == "Home"
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("effective page with empty overrides equals defaults", prop.ForAll(
		func(_ int) bool {
			return reflect.DeepEqual(Overrides{}.Effective(), DefaultPage())
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/eugenenazirov/landing/internal/content"
	"github.com/eugenenazirov/landing/internal/navigate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes the landing page and its sections as HTML.
type Renderer struct {
	tmpl     *template.Template
	resolver *navigate.Resolver
}

// New parses the embedded templates. Links are classified with resolver.
func New(resolver *navigate.Resolver) (*Renderer, error) {
	if resolver == nil {
		resolver = navigate.NewResolver(nil)
	}
	tmpl, err := template.New("landing").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, resolver: resolver}, nil
}

// Page writes the full landing page.
func (r *Renderer) Page(w io.Writer, page content.Page, billing content.BillingPeriod) error {
	view := Build(page, billing, r.resolver)
	if err := r.tmpl.ExecuteTemplate(w, "page", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Section writes a single section fragment, for previews of an edit.
func (r *Renderer) Section(w io.Writer, section content.Section, page content.Page, billing content.BillingPeriod) error {
	view := Build(page, billing, r.resolver)

	var data any
	switch section {
	case content.SectionNavigation:
		data = view.Navigation
	case content.SectionHero:
		data = view.Hero
	case content.SectionPricing:
		data = view.Pricing
	case content.SectionFooter:
		data = view.Footer
	default:
		return fmt.Errorf("%w: %q", content.ErrUnknownSection, section)
	}

	if err := r.tmpl.ExecuteTemplate(w, string(section), data); err != nil {
		return fmt.Errorf("render %s: %w", section, err)
	}
	return nil
}

func discountLabel() string {
	return fmt.Sprintf("Save %d%%", content.YearlyDiscountPercent)
}

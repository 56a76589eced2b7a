package render

import (
	"html/template"
	"net/url"

	"github.com/eugenenazirov/landing/internal/content"
	"github.com/eugenenazirov/landing/internal/editable"
	"github.com/eugenenazirov/landing/internal/navigate"
)

// LinkView is a clickable element: its label and destination are tagged
// independently, and the destination is classified by the navigation resolver.
type LinkView struct {
	Label    editable.Text
	Target   editable.Link
	Kind     navigate.Kind
	URL      template.URL
	External bool
}

// FeatureView is a hero feature bullet.
type FeatureView struct {
	Text editable.Text
	Icon string
}

// SocialView is an icon-only footer link.
type SocialView struct {
	Platform string
	Icon     string
	Target   editable.Link
	Kind     navigate.Kind
	URL      template.URL
	External bool
}

// NavigationView is the rendered navigation bar.
type NavigationView struct {
	Logo            LinkView
	Items           []LinkView
	CTA             LinkView
	MobileMenuLabel string
	CloseMenuLabel  string
}

// HeroView is the rendered hero section.
type HeroView struct {
	Headline         editable.Text
	Subheadline      editable.Text
	Description      editable.Text
	PrimaryCTA       LinkView
	SecondaryCTA     LinkView
	Features         []FeatureView
	StatsLabel       editable.Text
	StatsValue       editable.Text
	StatsDescription editable.Text
}

// PlanView is one rendered pricing card.
type PlanView struct {
	ID          string
	Name        editable.Text
	Description editable.Text
	Popular     bool
	Price       int
	BasePrice   int
	PeriodLabel string
	Features    []editable.Text
	CTA         LinkView
}

// PricingView is the rendered pricing section.
type PricingView struct {
	Title         editable.Text
	Subtitle      editable.Text
	Guarantee     editable.Text
	Note          editable.Text
	Plans         []PlanView
	Yearly        bool
	Toggle        ToggleView
	DiscountLabel string
}

// ToggleView switches the pricing section to the other billing period.
type ToggleView struct {
	Kind navigate.Kind
	URL  template.URL
}

// FooterView is the rendered footer.
type FooterView struct {
	CompanyName           editable.Text
	Tagline               editable.Text
	Description           editable.Text
	Email                 editable.Text
	Phone                 editable.Text
	Address               editable.Text
	SocialLinks           []SocialView
	QuickLinks            []LinkView
	Resources             []LinkView
	Legal                 []LinkView
	BottomLinks           []LinkView
	NewsletterTitle       editable.Text
	NewsletterDescription editable.Text
	NewsletterPlaceholder string
	NewsletterButtonText  editable.Text
	CopyrightText         editable.Text
}

// PageView is everything the page template needs.
type PageView struct {
	Title      string
	Navigation NavigationView
	Hero       HeroView
	Pricing    PricingView
	Footer     FooterView
}

// Build turns effective section configs into tagged view models. Paths are
// generated from the same slices being rendered, so they always resolve.
func Build(page content.Page, billing content.BillingPeriod, resolver *navigate.Resolver) PageView {
	b := builder{resolver: resolver}
	return PageView{
		Title:      page.Navigation.Logo,
		Navigation: b.navigation(page.Navigation),
		Hero:       b.hero(page.Hero),
		Pricing:    b.pricing(page.Pricing, billing),
		Footer:     b.footer(page.Footer),
	}
}

type builder struct {
	resolver *navigate.Resolver
}

func (b builder) link(labelPath editable.Path, label string, hrefPath editable.Path, href string) LinkView {
	t := b.resolver.Classify(href)
	v := LinkView{
		Label:    editable.TagText(labelPath, label),
		Target:   editable.TagLink(hrefPath, href),
		Kind:     t.Kind,
		External: t.Kind == navigate.External,
	}
	if t.Kind != navigate.None {
		// Classify only lets through #fragments, paths and http(s)/mailto/tel URLs.
		v.URL = template.URL(t.Href)
	}
	return v
}

func (b builder) links(field string, items []content.LinkItem) []LinkView {
	out := make([]LinkView, 0, len(items))
	for i, item := range items {
		at := editable.Root(field).Index(i)
		out = append(out, b.link(at.Field("label"), item.Label, at.Field("href"), item.Href))
	}
	return out
}

func (b builder) navigation(c content.NavigationConfig) NavigationView {
	return NavigationView{
		Logo:            b.link(editable.Root("logo"), c.Logo, editable.Root("logoHref"), c.LogoHref),
		Items:           b.links("navItems", c.NavItems),
		CTA:             b.link(editable.Root("ctaText"), c.CTAText, editable.Root("ctaHref"), c.CTAHref),
		MobileMenuLabel: c.MobileMenuLabel,
		CloseMenuLabel:  c.CloseMenuLabel,
	}
}

func (b builder) hero(c content.HeroConfig) HeroView {
	features := make([]FeatureView, 0, len(c.Features))
	for i, f := range c.Features {
		features = append(features, FeatureView{
			Text: editable.TagText(editable.Root("features").Index(i).Field("text"), f.Text),
			Icon: f.Icon,
		})
	}
	return HeroView{
		Headline:         text("headline", c.Headline),
		Subheadline:      text("subheadline", c.Subheadline),
		Description:      text("description", c.Description),
		PrimaryCTA:       b.link(editable.Root("ctaText"), c.CTAText, editable.Root("ctaHref"), c.CTAHref),
		SecondaryCTA:     b.link(editable.Root("secondaryCtaText"), c.SecondaryCTAText, editable.Root("secondaryCtaHref"), c.SecondaryCTAHref),
		Features:         features,
		StatsLabel:       text("statsLabel", c.StatsLabel),
		StatsValue:       text("statsValue", c.StatsValue),
		StatsDescription: text("statsDescription", c.StatsDescription),
	}
}

func (b builder) pricing(c content.PricingConfig, billing content.BillingPeriod) PricingView {
	plans := make([]PlanView, 0, len(c.Plans))
	for i, p := range c.Plans {
		at := editable.Root("plans").Index(i)
		features := make([]editable.Text, 0, len(p.Features))
		for j, f := range p.Features {
			features = append(features, editable.TagText(at.Field("features").Index(j), f))
		}
		plans = append(plans, PlanView{
			ID:          p.ID,
			Name:        editable.TagText(at.Field("name"), p.Name),
			Description: editable.TagText(at.Field("description"), p.Description),
			Popular:     p.Popular,
			Price:       content.DisplayPrice(p.Price, billing),
			BasePrice:   p.Price,
			PeriodLabel: billing.PeriodLabel(),
			Features:    features,
			CTA:         b.link(at.Field("ctaText"), p.CTAText, at.Field("ctaHref"), p.CTAHref),
		})
	}
	return PricingView{
		Title:         text("title", c.Title),
		Subtitle:      text("subtitle", c.Subtitle),
		Guarantee:     text("guarantee", c.Guarantee),
		Note:          text("note", c.Note),
		Plans:         plans,
		Yearly:        billing.Yearly(),
		Toggle:        b.toggle(billing),
		DiscountLabel: discountLabel(),
	}
}

func (b builder) toggle(billing content.BillingPeriod) ToggleView {
	q := url.Values{"billing": {string(billing.Toggle())}}
	t := b.resolver.Classify("/?" + q.Encode() + "#" + string(content.SectionPricing))
	v := ToggleView{Kind: t.Kind}
	if t.Kind != navigate.None {
		v.URL = template.URL(t.Href)
	}
	return v
}

func (b builder) footer(c content.FooterConfig) FooterView {
	social := make([]SocialView, 0, len(c.SocialLinks))
	for i, s := range c.SocialLinks {
		t := b.resolver.Classify(s.Href)
		v := SocialView{
			Platform: s.Platform,
			Icon:     s.Icon,
			Target:   editable.TagLink(editable.Root("socialLinks").Index(i).Field("href"), s.Href),
			Kind:     t.Kind,
			External: t.Kind == navigate.External,
		}
		if t.Kind != navigate.None {
			v.URL = template.URL(t.Href)
		}
		social = append(social, v)
	}
	return FooterView{
		CompanyName:           text("companyName", c.CompanyName),
		Tagline:               text("tagline", c.Tagline),
		Description:           text("description", c.Description),
		Email:                 text("email", c.Email),
		Phone:                 text("phone", c.Phone),
		Address:               text("address", c.Address),
		SocialLinks:           social,
		QuickLinks:            b.links("quickLinks", c.QuickLinks),
		Resources:             b.links("resources", c.Resources),
		Legal:                 b.links("legal", c.Legal),
		BottomLinks:           b.links("bottomLinks", c.BottomLinks),
		NewsletterTitle:       text("newsletterTitle", c.NewsletterTitle),
		NewsletterDescription: text("newsletterDescription", c.NewsletterDescription),
		NewsletterPlaceholder: c.NewsletterPlaceholder,
		NewsletterButtonText:  text("newsletterButtonText", c.NewsletterButtonText),
		CopyrightText:         text("copyrightText", c.CopyrightText),
	}
}

func text(field, value string) editable.Text {
	return editable.TagText(editable.Root(field), value)
}

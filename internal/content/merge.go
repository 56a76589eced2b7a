package content

// Overrides are partial section configurations. A nil pointer or nil slice
// means "absent, keep the default"; anything else replaces the default field
// wholesale, including an empty non-nil slice.

// NavigationOverride is a partial NavigationConfig.
type NavigationOverride struct {
	Logo            *string    `yaml:"logo,omitempty" json:"logo,omitempty"`
	LogoHref        *string    `yaml:"logoHref,omitempty" json:"logoHref,omitempty"`
	NavItems        []LinkItem `yaml:"navItems,omitempty" json:"navItems,omitempty"`
	CTAText         *string    `yaml:"ctaText,omitempty" json:"ctaText,omitempty"`
	CTAHref         *string    `yaml:"ctaHref,omitempty" json:"ctaHref,omitempty"`
	MobileMenuLabel *string    `yaml:"mobileMenuLabel,omitempty" json:"mobileMenuLabel,omitempty"`
	CloseMenuLabel  *string    `yaml:"closeMenuLabel,omitempty" json:"closeMenuLabel,omitempty"`
}

// HeroOverride is a partial HeroConfig.
type HeroOverride struct {
	Headline         *string   `yaml:"headline,omitempty" json:"headline,omitempty"`
	Subheadline      *string   `yaml:"subheadline,omitempty" json:"subheadline,omitempty"`
	Description      *string   `yaml:"description,omitempty" json:"description,omitempty"`
	CTAText          *string   `yaml:"ctaText,omitempty" json:"ctaText,omitempty"`
	CTAHref          *string   `yaml:"ctaHref,omitempty" json:"ctaHref,omitempty"`
	SecondaryCTAText *string   `yaml:"secondaryCtaText,omitempty" json:"secondaryCtaText,omitempty"`
	SecondaryCTAHref *string   `yaml:"secondaryCtaHref,omitempty" json:"secondaryCtaHref,omitempty"`
	Features         []Feature `yaml:"features,omitempty" json:"features,omitempty"`
	StatsLabel       *string   `yaml:"statsLabel,omitempty" json:"statsLabel,omitempty"`
	StatsValue       *string   `yaml:"statsValue,omitempty" json:"statsValue,omitempty"`
	StatsDescription *string   `yaml:"statsDescription,omitempty" json:"statsDescription,omitempty"`
}

// PricingOverride is a partial PricingConfig. Plans can only be replaced as a
// whole list.
type PricingOverride struct {
	Title     *string    `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle  *string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Guarantee *string    `yaml:"guarantee,omitempty" json:"guarantee,omitempty"`
	Note      *string    `yaml:"note,omitempty" json:"note,omitempty"`
	Plans     []PlanItem `yaml:"plans,omitempty" json:"plans,omitempty"`
}

// FooterOverride is a partial FooterConfig.
type FooterOverride struct {
	CompanyName           *string      `yaml:"companyName,omitempty" json:"companyName,omitempty"`
	Tagline               *string      `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Description           *string      `yaml:"description,omitempty" json:"description,omitempty"`
	Email                 *string      `yaml:"email,omitempty" json:"email,omitempty"`
	Phone                 *string      `yaml:"phone,omitempty" json:"phone,omitempty"`
	Address               *string      `yaml:"address,omitempty" json:"address,omitempty"`
	QuickLinks            []LinkItem   `yaml:"quickLinks,omitempty" json:"quickLinks,omitempty"`
	Resources             []LinkItem   `yaml:"resources,omitempty" json:"resources,omitempty"`
	Legal                 []LinkItem   `yaml:"legal,omitempty" json:"legal,omitempty"`
	SocialLinks           []SocialLink `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	NewsletterTitle       *string      `yaml:"newsletterTitle,omitempty" json:"newsletterTitle,omitempty"`
	NewsletterDescription *string      `yaml:"newsletterDescription,omitempty" json:"newsletterDescription,omitempty"`
	NewsletterPlaceholder *string      `yaml:"newsletterPlaceholder,omitempty" json:"newsletterPlaceholder,omitempty"`
	NewsletterButtonText  *string      `yaml:"newsletterButtonText,omitempty" json:"newsletterButtonText,omitempty"`
	CopyrightText         *string      `yaml:"copyrightText,omitempty" json:"copyrightText,omitempty"`
	BottomLinks           []LinkItem   `yaml:"bottomLinks,omitempty" json:"bottomLinks,omitempty"`
}

// MergeNavigation overlays ov on def.
func MergeNavigation(def NavigationConfig, ov NavigationOverride) NavigationConfig {
	return NavigationConfig{
		Logo:            pick(ov.Logo, def.Logo),
		LogoHref:        pick(ov.LogoHref, def.LogoHref),
		NavItems:        pickSlice(ov.NavItems, def.NavItems),
		CTAText:         pick(ov.CTAText, def.CTAText),
		CTAHref:         pick(ov.CTAHref, def.CTAHref),
		MobileMenuLabel: pick(ov.MobileMenuLabel, def.MobileMenuLabel),
		CloseMenuLabel:  pick(ov.CloseMenuLabel, def.CloseMenuLabel),
	}
}

// MergeHero overlays ov on def.
func MergeHero(def HeroConfig, ov HeroOverride) HeroConfig {
	return HeroConfig{
		Headline:         pick(ov.Headline, def.Headline),
		Subheadline:      pick(ov.Subheadline, def.Subheadline),
		Description:      pick(ov.Description, def.Description),
		CTAText:          pick(ov.CTAText, def.CTAText),
		CTAHref:          pick(ov.CTAHref, def.CTAHref),
		SecondaryCTAText: pick(ov.SecondaryCTAText, def.SecondaryCTAText),
		SecondaryCTAHref: pick(ov.SecondaryCTAHref, def.SecondaryCTAHref),
		Features:         pickSlice(ov.Features, def.Features),
		StatsLabel:       pick(ov.StatsLabel, def.StatsLabel),
		StatsValue:       pick(ov.StatsValue, def.StatsValue),
		StatsDescription: pick(ov.StatsDescription, def.StatsDescription),
	}
}

// MergePricing overlays ov on def.
func MergePricing(def PricingConfig, ov PricingOverride) PricingConfig {
	return PricingConfig{
		Title:     pick(ov.Title, def.Title),
		Subtitle:  pick(ov.Subtitle, def.Subtitle),
		Guarantee: pick(ov.Guarantee, def.Guarantee),
		Note:      pick(ov.Note, def.Note),
		Plans:     pickSlice(ov.Plans, def.Plans),
	}
}

// MergeFooter overlays ov on def.
func MergeFooter(def FooterConfig, ov FooterOverride) FooterConfig {
	return FooterConfig{
		CompanyName:           pick(ov.CompanyName, def.CompanyName),
		Tagline:               pick(ov.Tagline, def.Tagline),
		Description:           pick(ov.Description, def.Description),
		Email:                 pick(ov.Email, def.Email),
		Phone:                 pick(ov.Phone, def.Phone),
		Address:               pick(ov.Address, def.Address),
		QuickLinks:            pickSlice(ov.QuickLinks, def.QuickLinks),
		Resources:             pickSlice(ov.Resources, def.Resources),
		Legal:                 pickSlice(ov.Legal, def.Legal),
		SocialLinks:           pickSlice(ov.SocialLinks, def.SocialLinks),
		NewsletterTitle:       pick(ov.NewsletterTitle, def.NewsletterTitle),
		NewsletterDescription: pick(ov.NewsletterDescription, def.NewsletterDescription),
		NewsletterPlaceholder: pick(ov.NewsletterPlaceholder, def.NewsletterPlaceholder),
		NewsletterButtonText:  pick(ov.NewsletterButtonText, def.NewsletterButtonText),
		CopyrightText:         pick(ov.CopyrightText, def.CopyrightText),
		BottomLinks:           pickSlice(ov.BottomLinks, def.BottomLinks),
	}
}

func pick[T any](ov *T, def T) T {
	if ov != nil {
		return *ov
	}
	return def
}

func pickSlice[T any](ov, def []T) []T {
	if ov != nil {
		return ov
	}
	return def
}

// String returns a pointer to s, for building overrides in code.
func String(s string) *string {
	return &s
}

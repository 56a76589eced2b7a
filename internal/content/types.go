package content

// LinkItem is a labelled navigation target.
type LinkItem struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// SocialLink is a footer social profile. The icon identifier travels with the
// entry instead of being paired by list position.
type SocialLink struct {
	Platform string `yaml:"platform" json:"platform"`
	Href     string `yaml:"href" json:"href"`
	Icon     string `yaml:"icon" json:"icon" editable:"-"`
}

// Feature is a hero feature bullet with its icon.
type Feature struct {
	Text string `yaml:"text" json:"text"`
	Icon string `yaml:"icon" json:"icon" editable:"-"`
}

// PlanPeriod is the billing unit a plan price is quoted in.
type PlanPeriod string

const PeriodMonth PlanPeriod = "month"

// PlanItem is one pricing plan. Price is a whole currency amount per Period.
type PlanItem struct {
	ID          string     `yaml:"id" json:"id" editable:"-"`
	Name        string     `yaml:"name" json:"name"`
	Price       int        `yaml:"price" json:"price"`
	Period      PlanPeriod `yaml:"period" json:"period" editable:"-"`
	Description string     `yaml:"description" json:"description"`
	Popular     bool       `yaml:"popular" json:"popular"`
	Features    []string   `yaml:"features" json:"features"`
	CTAText     string     `yaml:"ctaText" json:"ctaText"`
	CTAHref     string     `yaml:"ctaHref" json:"ctaHref"`
}

// NavigationConfig is the effective configuration of the top navigation bar.
type NavigationConfig struct {
	Logo            string     `yaml:"logo" json:"logo"`
	LogoHref        string     `yaml:"logoHref" json:"logoHref"`
	NavItems        []LinkItem `yaml:"navItems" json:"navItems"`
	CTAText         string     `yaml:"ctaText" json:"ctaText"`
	CTAHref         string     `yaml:"ctaHref" json:"ctaHref"`
	MobileMenuLabel string     `yaml:"mobileMenuLabel" json:"mobileMenuLabel"`
	CloseMenuLabel  string     `yaml:"closeMenuLabel" json:"closeMenuLabel"`
}

// HeroConfig is the effective configuration of the hero section.
type HeroConfig struct {
	Headline         string    `yaml:"headline" json:"headline"`
	Subheadline      string    `yaml:"subheadline" json:"subheadline"`
	Description      string    `yaml:"description" json:"description"`
	CTAText          string    `yaml:"ctaText" json:"ctaText"`
	CTAHref          string    `yaml:"ctaHref" json:"ctaHref"`
	SecondaryCTAText string    `yaml:"secondaryCtaText" json:"secondaryCtaText"`
	SecondaryCTAHref string    `yaml:"secondaryCtaHref" json:"secondaryCtaHref"`
	Features         []Feature `yaml:"features" json:"features"`
	StatsLabel       string    `yaml:"statsLabel" json:"statsLabel"`
	StatsValue       string    `yaml:"statsValue" json:"statsValue"`
	StatsDescription string    `yaml:"statsDescription" json:"statsDescription"`
}

// PricingConfig is the effective configuration of the pricing section.
type PricingConfig struct {
	Title     string     `yaml:"title" json:"title"`
	Subtitle  string     `yaml:"subtitle" json:"subtitle"`
	Guarantee string     `yaml:"guarantee" json:"guarantee"`
	Note      string     `yaml:"note" json:"note"`
	Plans     []PlanItem `yaml:"plans" json:"plans"`
}

// FooterConfig is the effective configuration of the footer.
type FooterConfig struct {
	CompanyName           string       `yaml:"companyName" json:"companyName"`
	Tagline               string       `yaml:"tagline" json:"tagline"`
	Description           string       `yaml:"description" json:"description"`
	Email                 string       `yaml:"email" json:"email"`
	Phone                 string       `yaml:"phone" json:"phone"`
	Address               string       `yaml:"address" json:"address"`
	QuickLinks            []LinkItem   `yaml:"quickLinks" json:"quickLinks"`
	Resources             []LinkItem   `yaml:"resources" json:"resources"`
	Legal                 []LinkItem   `yaml:"legal" json:"legal"`
	SocialLinks           []SocialLink `yaml:"socialLinks" json:"socialLinks"`
	NewsletterTitle       string       `yaml:"newsletterTitle" json:"newsletterTitle"`
	NewsletterDescription string       `yaml:"newsletterDescription" json:"newsletterDescription"`
	NewsletterPlaceholder string       `yaml:"newsletterPlaceholder" json:"newsletterPlaceholder"`
	NewsletterButtonText  string       `yaml:"newsletterButtonText" json:"newsletterButtonText"`
	CopyrightText         string       `yaml:"copyrightText" json:"copyrightText"`
	BottomLinks           []LinkItem   `yaml:"bottomLinks" json:"bottomLinks"`
}

// Page holds the effective configuration of every section for one render.
type Page struct {
	Navigation NavigationConfig `json:"navigation"`
	Hero       HeroConfig       `json:"hero"`
	Pricing    PricingConfig    `json:"pricing"`
	Footer     FooterConfig     `json:"footer"`
}

// Config returns a pointer to the section's configuration inside p, suitable
// for editable.Resolve and editable.Set.
func (p *Page) Config(section Section) (any, error) {
	switch section {
	case SectionNavigation:
		return &p.Navigation, nil
	case SectionHero:
		return &p.Hero, nil
	case SectionPricing:
		return &p.Pricing, nil
	case SectionFooter:
		return &p.Footer, nil
	default:
		return nil, unknownSection(string(section))
	}
}

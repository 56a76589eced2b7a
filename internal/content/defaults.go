package content

// Canonical section defaults. They are read-only for the life of the process;
// the Default* accessors hand out deep copies so callers can never write
// through to them.

var defaultNavigation = NavigationConfig{
	Logo:     "StartupOS",
	LogoHref: "#hero",
	NavItems: []LinkItem{
		{Label: "Home", Href: "#hero"},
		{Label: "Pricing", Href: "#pricing"},
	},
	CTAText:         "Get Started",
	CTAHref:         "#pricing",
	MobileMenuLabel: "Open navigation menu",
	CloseMenuLabel:  "Close navigation menu",
}

var defaultHero = HeroConfig{
	Headline:         "Build, Scale, Succeed",
	Subheadline:      "The all-in-one platform that transforms your startup idea into a thriving business with AI-powered tools and data-driven insights.",
	Description:      "Join thousands of entrepreneurs who've accelerated their growth with our comprehensive suite of startup tools. From MVP development to market validation, we've got you covered.",
	CTAText:          "Start Building Today",
	CTAHref:          "/get-started",
	SecondaryCTAText: "Watch Demo",
	SecondaryCTAHref: "/demo",
	Features: []Feature{
		{Text: "AI-powered market analysis", Icon: "zap"},
		{Text: "Rapid MVP development", Icon: "trending-up"},
		{Text: "Real-time performance tracking", Icon: "target"},
	},
	StatsLabel:       "Trusted by",
	StatsValue:       "10,000+",
	StatsDescription: "entrepreneurs worldwide",
}

var defaultPricing = PricingConfig{
	Title:     "Choose Your Growth Plan",
	Subtitle:  "Flexible pricing that scales with your startup journey",
	Guarantee: "14-day money-back guarantee",
	Note:      "All plans include free onboarding and migration support",
	Plans: []PlanItem{
		{
			ID:          "starter",
			Name:        "Starter",
			Price:       29,
			Period:      PeriodMonth,
			Description: "Perfect for early-stage startups",
			Features: []string{
				"Up to 5 team members",
				"Basic analytics dashboard",
				"Email support",
				"Core integrations",
			},
			CTAText: "Start Free Trial",
			CTAHref: "/signup?plan=starter",
		},
		{
			ID:          "growth",
			Name:        "Growth",
			Price:       99,
			Period:      PeriodMonth,
			Description: "Ideal for scaling startups",
			Popular:     true,
			Features: []string{
				"Up to 25 team members",
				"Advanced analytics & insights",
				"Priority support",
				"All integrations",
				"Custom workflows",
				"API access",
			},
			CTAText: "Start Free Trial",
			CTAHref: "/signup?plan=growth",
		},
		{
			ID:          "enterprise",
			Name:        "Enterprise",
			Price:       299,
			Period:      PeriodMonth,
			Description: "For established companies",
			Features: []string{
				"Unlimited team members",
				"Enterprise analytics",
				"24/7 dedicated support",
				"Custom integrations",
				"Advanced security",
				"SLA guarantee",
			},
			CTAText: "Contact Sales",
			CTAHref: "/contact?plan=enterprise",
		},
	},
}

var defaultFooter = FooterConfig{
	CompanyName: "Your Startup",
	Tagline:     "Building the future, one innovation at a time.",
	Description: "We help startups and businesses transform their ideas into successful digital products with cutting-edge technology and expert guidance.",
	Email:       "hello@yourstartup.com",
	Phone:       "+1 (555) 123-4567",
	Address:     "123 Innovation Street, Tech City, TC 12345",
	QuickLinks: []LinkItem{
		{Label: "About Us", Href: "/about"},
		{Label: "Services", Href: "/services"},
		{Label: "Pricing", Href: "#pricing"},
		{Label: "Contact", Href: "/contact"},
	},
	Resources: []LinkItem{
		{Label: "Blog", Href: "/blog"},
		{Label: "Documentation", Href: "/docs"},
		{Label: "Help Center", Href: "/help"},
		{Label: "API Reference", Href: "/api"},
	},
	Legal: []LinkItem{
		{Label: "Privacy Policy", Href: "/privacy"},
		{Label: "Terms of Service", Href: "/terms"},
		{Label: "Cookie Policy", Href: "/cookies"},
		{Label: "GDPR", Href: "/gdpr"},
	},
	SocialLinks: []SocialLink{
		{Platform: "Twitter", Href: "https://twitter.com/yourstartup", Icon: "twitter"},
		{Platform: "LinkedIn", Href: "https://linkedin.com/company/yourstartup", Icon: "linkedin"},
		{Platform: "Facebook", Href: "https://facebook.com/yourstartup", Icon: "facebook"},
		{Platform: "Instagram", Href: "https://instagram.com/yourstartup", Icon: "instagram"},
	},
	NewsletterTitle:       "Stay Updated",
	NewsletterDescription: "Get the latest updates, tips, and insights delivered to your inbox.",
	NewsletterPlaceholder: "Enter your email address",
	NewsletterButtonText:  "Subscribe",
	CopyrightText:         "© 2024 Your Startup. All rights reserved.",
	BottomLinks: []LinkItem{
		{Label: "Sitemap", Href: "/sitemap"},
		{Label: "Accessibility", Href: "/accessibility"},
		{Label: "Security", Href: "/security"},
	},
}

// DefaultNavigation returns a copy of the navigation defaults.
func DefaultNavigation() NavigationConfig {
	return defaultNavigation.clone()
}

// DefaultHero returns a copy of the hero defaults.
func DefaultHero() HeroConfig {
	return defaultHero.clone()
}

// DefaultPricing returns a copy of the pricing defaults.
func DefaultPricing() PricingConfig {
	return defaultPricing.clone()
}

// DefaultFooter returns a copy of the footer defaults.
func DefaultFooter() FooterConfig {
	return defaultFooter.clone()
}

// DefaultPage returns the effective page when no overrides are supplied.
func DefaultPage() Page {
	return Page{
		Navigation: DefaultNavigation(),
		Hero:       DefaultHero(),
		Pricing:    DefaultPricing(),
		Footer:     DefaultFooter(),
	}
}

func (c NavigationConfig) clone() NavigationConfig {
	c.NavItems = cloneSlice(c.NavItems)
	return c
}

func (c HeroConfig) clone() HeroConfig {
	c.Features = cloneSlice(c.Features)
	return c
}

func (c PricingConfig) clone() PricingConfig {
	c.Plans = clonePlans(c.Plans)
	return c
}

func (c FooterConfig) clone() FooterConfig {
	c.QuickLinks = cloneSlice(c.QuickLinks)
	c.Resources = cloneSlice(c.Resources)
	c.Legal = cloneSlice(c.Legal)
	c.SocialLinks = cloneSlice(c.SocialLinks)
	c.BottomLinks = cloneSlice(c.BottomLinks)
	return c
}

// cloneSlice keeps the nil/empty distinction, which marks absent overrides.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func clonePlans(src []PlanItem) []PlanItem {
	out := cloneSlice(src)
	for i := range out {
		out[i].Features = cloneSlice(out[i].Features)
	}
	return out
}

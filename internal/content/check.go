package content

import (
	"errors"
	"fmt"
)

var (
	// ErrMultiplePopular flags a plan list emphasising more than one plan.
	ErrMultiplePopular = errors.New("more than one plan is marked popular")
	// ErrDuplicatePlanID flags plan IDs that are not unique within the list.
	ErrDuplicatePlanID = errors.New("duplicate plan id")
	// ErrMissingIcon flags an entry rendered with an icon but configured without one.
	ErrMissingIcon = errors.New("missing icon")
)

// Check reports design-note violations in the plan list. They are advisory:
// the page still renders, callers log the result.
func (c PricingConfig) Check() error {
	var errs []error
	popular := 0
	seen := make(map[string]int, len(c.Plans))
	for i, plan := range c.Plans {
		if plan.Popular {
			popular++
		}
		if prev, ok := seen[plan.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %q at plans[%d] and plans[%d]", ErrDuplicatePlanID, plan.ID, prev, i))
			continue
		}
		seen[plan.ID] = i
	}
	if popular > 1 {
		errs = append(errs, fmt.Errorf("%w: %d plans", ErrMultiplePopular, popular))
	}
	return errors.Join(errs...)
}

// Check reports hero features configured without an icon.
func (c HeroConfig) Check() error {
	var errs []error
	for i, f := range c.Features {
		if f.Icon == "" {
			errs = append(errs, fmt.Errorf("%w: features[%d]", ErrMissingIcon, i))
		}
	}
	return errors.Join(errs...)
}

// Check reports social links configured without an icon.
func (c FooterConfig) Check() error {
	var errs []error
	for i, s := range c.SocialLinks {
		if s.Icon == "" {
			errs = append(errs, fmt.Errorf("%w: socialLinks[%d]", ErrMissingIcon, i))
		}
	}
	return errors.Join(errs...)
}

// Check runs every section check of the page.
func (p Page) Check() error {
	return errors.Join(p.Hero.Check(), p.Pricing.Check(), p.Footer.Check())
}

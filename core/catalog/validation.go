// Package catalog - Catalog validation
// Ensures every construction system can be fully priced.
package catalog

import (
	"fmt"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(Assignment) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validatePriced,
		validateSpan,
		validateNotDecorative,
	}
}

// Validate checks every system's assignment against the rules
func Validate(rules []ValidationRule) []error {
	var errs []error

	for _, s := range Systems() {
		a, err := Assign(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s, err))
			continue
		}
		for _, rule := range rules {
			if err := rule(a); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", s, err))
			}
		}
	}

	return errs
}

// validatePriced ensures each category has a coefficient for its material
func validatePriced(a Assignment) error {
	if _, err := SlabRatePerM2(a.Slab); err != nil {
		return err
	}
	if _, err := ColumnRatePerM(a.Column); err != nil {
		return err
	}
	if _, err := CoreRatePerM2(a.Core); err != nil {
		return err
	}
	return nil
}

// validateSpan ensures the column span is positive
func validateSpan(a Assignment) error {
	if a.ColumnSpan <= 0 {
		return fmt.Errorf("column span must be positive, got %v", a.ColumnSpan)
	}
	return nil
}

// validateNotDecorative ensures the ground material is never structural
func validateNotDecorative(a Assignment) error {
	if a.Slab == Ground || a.Column == Ground || a.Core == Ground {
		return fmt.Errorf("ground material assigned to a structural element")
	}
	return nil
}

// MustValidate panics if validation fails
func MustValidate() {
	errs := Validate(DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors: %v", len(errs), errs))
	}
}

func init() {
	MustValidate()
}

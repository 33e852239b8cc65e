package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level section. Sections
// appear in the order of their first error.
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var order []string
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")
	for _, category := range order {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(category))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			fmt.Fprintf(&b, "  - %s: %s\n", field, err.Message)
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *RenderConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Geometry.Validate()...)
	errors = append(errors, c.Gradient.Validate()...)
	errors = append(errors, c.Blur.Validate()...)
	return errors
}

func (g *Geometry) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("geometry.content_width", float64(g.ContentWidth))...)
	errors = append(errors, validatePositive("geometry.content_height", float64(g.ContentHeight))...)
	errors = append(errors, validateNonNegative("geometry.reflection_size", float64(g.ReflectionSize))...)
	errors = append(errors, validateNonNegative("geometry.elevation", float64(g.Elevation))...)
	errors = append(errors, validateNonNegative("geometry.side_padding", float64(g.SidePadding))...)
	errors = append(errors, validateNonNegative("geometry.corner_radius", g.CornerRadius)...)

	if g.ContentHeight > 0 && g.ReflectionSize > g.ContentHeight {
		errors = append(errors, ValidationError{
			Field:   "geometry.reflection_size",
			Message: "must not exceed content_height",
		})
	}
	if g.ContentWidth > 0 && 2*g.SidePadding >= g.ContentWidth {
		errors = append(errors, ValidationError{
			Field:   "geometry.side_padding",
			Message: "must leave room for the reflection",
		})
	}

	return errors
}

func (g *Gradient) Validate() []ValidationError {
	var errors []ValidationError

	if len(g.Stops) == 0 && g.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "gradient",
			Message: "either stops or from_file must be specified",
		})
		return errors
	}

	for i, s := range g.Stops {
		field := fmt.Sprintf("gradient.stops[%d]", i)
		if s.Color != "" {
			if _, err := colorful.Hex(s.Color); err != nil {
				errors = append(errors, ValidationError{
					Field:   field + ".color",
					Message: fmt.Sprintf("invalid hex color '%s'", s.Color),
				})
			}
		}
		errors = append(errors, validateInRange(field+".alpha", float64(s.Alpha), 0, 255)...)
		errors = append(errors, validateInRange(field+".position", s.Position, 0, 1)...)

		if i == 0 {
			continue
		}
		prev := g.Stops[i-1]
		if s.Position <= prev.Position {
			errors = append(errors, ValidationError{
				Field:   field + ".position",
				Message: "positions must be strictly increasing",
			})
		}
		if s.Alpha > prev.Alpha {
			errors = append(errors, ValidationError{
				Field:   field + ".alpha",
				Message: "alpha must not increase away from the card",
			})
		}
	}

	return errors
}

func (b *Blur) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateNonNegative("blur.radius", b.Radius)...)
	if b.Downscale <= 0 || b.Downscale > 1 {
		errors = append(errors, ValidationError{
			Field:   "blur.downscale",
			Message: "must be in (0, 1]",
		})
	}

	return errors
}

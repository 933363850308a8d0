package entity

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Content field constraints enforced before an article may be submitted
// for review. The same rules are recommended (but not required) at draft
// creation time.
const (
	maxTitleLength   = 200
	minExcerptLength = 150
	maxExcerptLength = 320
	minContentLength = 500
	maxContentLength = 10000
	minReasonLength  = 10
)

// ValidateContent checks the article's content fields against the
// publication constraints. It validates fields in declaration order and
// returns a ValidationError naming the first offending field, or nil if
// all fields pass.
func ValidateContent(a *Article) error {
	checks := []struct {
		field string
		value string
		rules []validation.Rule
	}{
		{"title", a.Title, []validation.Rule{
			validation.Required.Error("is required"),
			validation.RuneLength(0, maxTitleLength).Error(
				fmt.Sprintf("must be at most %d characters", maxTitleLength)),
		}},
		{"excerpt", a.Excerpt, []validation.Rule{
			validation.Required.Error("is required"),
			validation.RuneLength(minExcerptLength, maxExcerptLength).Error(
				fmt.Sprintf("must be between %d and %d characters", minExcerptLength, maxExcerptLength)),
		}},
		{"content", a.Content, []validation.Rule{
			validation.Required.Error("is required"),
			validation.RuneLength(minContentLength, maxContentLength).Error(
				fmt.Sprintf("must be between %d and %d characters", minContentLength, maxContentLength)),
		}},
		{"category", a.Category, []validation.Rule{
			validation.Required.Error("is required"),
		}},
	}

	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return &ValidationError{Field: c.field, Message: err.Error()}
		}
	}
	return nil
}

// ValidateRejectionReason checks the reason supplied with a moderation
// rejection. A reason must carry enough substance for the author to act on.
func ValidateRejectionReason(reason string) error {
	if err := validation.Validate(reason,
		validation.Required.Error("is required"),
		validation.RuneLength(minReasonLength, 0).Error(
			fmt.Sprintf("must be at least %d characters", minReasonLength)),
	); err != nil {
		return &ValidationError{Field: "reason", Message: err.Error()}
	}
	return nil
}

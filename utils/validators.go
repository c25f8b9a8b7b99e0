package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinSnoozeDuration = time.Minute
	MaxSnoozeDuration = 30 * 24 * time.Hour
)

var Validate *validator.Validate

// InitValidator registers the custom rules on both the package validator and
// gin's binding engine.
func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("snooze_duration", ValidateSnoozeDurationRule)
}

func ValidateSnoozeDurationRule(fl validator.FieldLevel) bool {
	_, err := ParseSnoozeDuration(fl.Field().String())
	return err == nil
}

// ParseSnoozeDuration parses a Go duration string ("45m", "3h", "72h") and
// checks it lies between MinSnoozeDuration and MaxSnoozeDuration.
func ParseSnoozeDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid snooze duration %q", s)
	}
	if d < MinSnoozeDuration || d > MaxSnoozeDuration {
		return 0, fmt.Errorf("snooze duration must be between %s and %s", MinSnoozeDuration, MaxSnoozeDuration)
	}
	return d, nil
}

// ValidationMessage renders binding errors as one readable line.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "snooze_duration":
			msgs = append(msgs, fmt.Sprintf("%s must be a duration between %s and %s", fe.Field(), MinSnoozeDuration, MaxSnoozeDuration))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

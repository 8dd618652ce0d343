package contract

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// ISODateTag is the binding tag for YYYY-MM-DD strings.
const ISODateTag = "isodate"

// IsISODate reports whether the field holds a calendar-valid YYYY-MM-DD date.
func IsISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

// RegisterValidators adds the custom tags used by the request types and
// makes field errors report wire names (json or form tag) instead of Go
// field names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(wireName)
	return v.RegisterValidation(ISODateTag, IsISODate)
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

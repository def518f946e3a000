package validate

// Thin wrapper around go-playground/validator so config structs and chart
// entries share one validator instance.
//
// e.g. internal/chart/geometry.go
//   type Entry struct {
//       Name  string  `validate:"required"`
//       Value float64 `validate:"gte=0"`
//       ...
//   }

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// FirstField returns the struct field name and failed tag of the first
// validation failure in err, or empty strings if err is not a validator error.
func FirstField(err error) (field, tag string) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "", ""
	}
	return errs[0].Field(), errs[0].Tag()
}

package service

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/pkordes/workout-tracker/internal/domain"
)

// invalid builds a validation error carrying a human-readable message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

// validateRecord enforces the rules common to saving and updating a workout.
// Every failing rule is reported; errors.Is(err, domain.ErrValidation)
// holds for the combined error.
//   - Date must be set.
//   - A workout type must be selected; a custom type needs a non-blank label.
//   - Notes may not exceed domain.MaxNotesLength characters.
func validateRecord(rec domain.WorkoutRecord) error {
	var errs error
	if rec.Date.IsZero() {
		errs = multierr.Append(errs, invalid("date is required"))
	}
	switch {
	case rec.Kind.IsZero():
		errs = multierr.Append(errs, invalid("workout type is required"))
	case rec.Kind.IsCustom() && strings.TrimSpace(rec.Kind.Label()) == "":
		errs = multierr.Append(errs, invalid("custom workout type label is required"))
	}
	if n := utf8.RuneCountInString(rec.Notes); n > domain.MaxNotesLength {
		errs = multierr.Append(errs, invalid("notes must be at most %d characters, got %d", domain.MaxNotesLength, n))
	}
	return errs
}

// validateWorkoutType enforces the rules for adding and editing a type.
//   - Name must be non-blank and the id must not be the custom sentinel.
//   - Each exercise needs a name and at least one set.
func validateWorkoutType(wt domain.WorkoutType) error {
	var errs error
	if strings.TrimSpace(wt.Name) == "" {
		errs = multierr.Append(errs, invalid("name is required"))
	}
	if wt.ID == domain.CustomTypeID {
		errs = multierr.Append(errs, invalid("id %q is reserved", domain.CustomTypeID))
	}
	for i, ex := range wt.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			errs = multierr.Append(errs, invalid("exercise #%d: name is required", i+1))
		}
		if ex.Sets < 1 {
			errs = multierr.Append(errs, invalid("exercise #%d: sets must be at least 1", i+1))
		}
	}
	return errs
}

// validateWeight requires a positive, finite weight and a date.
func validateWeight(e domain.WeightEntry) error {
	var errs error
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
		errs = multierr.Append(errs, invalid("weight must be a positive number"))
	}
	if e.Date.IsZero() {
		errs = multierr.Append(errs, invalid("date is required"))
	}
	return errs
}

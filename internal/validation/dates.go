package validation

import "time"

// ValidateBirthDeathDates succeeds when death is nil or strictly after
// birth. The same instant counts as a failure.
func ValidateBirthDeathDates(birth time.Time, death *time.Time) Result {
	if death != nil && !death.After(birth) {
		return Result{Success: false, Message: "Death date must be after birth date"}
	}
	return Result{Success: true, Message: "Dates are valid"}
}

// Package validation holds the pure domain validators used by the use
// cases. They are independent from the HTTP-edge binding validation in
// pkg/validation.
package validation

import "strings"

// Result is the uniform outcome of a domain validation.
type Result struct {
	Success bool
	Message string
}

// RequiredField pairs a value with the display name used in the
// failure message.
type RequiredField struct {
	Value string
	Name  string
}

// ValidateRequiredField fails with "<name> is required" when the value
// is blank after trimming.
func ValidateRequiredField(value, name string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Success: false, Message: name + " is required"}
	}
	return Result{Success: true, Message: "Field is valid"}
}

// ValidateRequiredFields short-circuits on the first failing field.
func ValidateRequiredFields(fields []RequiredField) Result {
	for _, f := range fields {
		if res := ValidateRequiredField(f.Value, f.Name); !res.Success {
			return res
		}
	}
	return Result{Success: true, Message: "All fields are valid"}
}

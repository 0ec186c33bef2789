// Package validation holds the profile form rule set. Rules are pure functions
// returning nil or a *FieldError; ValidateRecord runs them all.
package validation

// Package model defines the profile form record and the field catalogue shared
// by every front end. The catalogue keeps labels, placeholders, options and
// ordering in one place so the terminal, prompt and HTML renderers present the
// same form. Records are plain values; Snapshot is the frozen copy produced by
// a successful submission and is the only thing the result presenter consumes.
package model

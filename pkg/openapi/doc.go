// Package openapi describes the JSON submission API of the profile form as an
// OpenAPI 3 document built with kin-openapi. The record schema is derived from
// the form model so the document follows field changes.
package openapi

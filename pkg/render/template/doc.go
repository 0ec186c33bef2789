// Package template defines the template engine seam used by the HTML front
// end. The gotemplate subpackage provides the pongo2-backed implementation.
package template

// Package render defines the summary renderer contract and the helpers front
// ends share when drawing the form: inline error mapping and hidden fields.
package render

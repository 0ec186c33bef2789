// Package web serves the profile form over HTTP.
//
// Each browser gets its own formstate.Session keyed by a cookie. The page is a
// plain HTML form; buttons post one of the actions add-tag, remove-tag:<i> or
// submit together with the current field values and a CSRF token, and the
// handler redirects back to the page. While a submission is in flight the page
// renders its busy state and refreshes itself until the snapshot is published.
//
// The JSON API at /api/submissions validates a whole record in one request and
// answers after the simulated delay; /openapi.json describes it.
package web

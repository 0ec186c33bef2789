// Package prompt fills the profile form through sequential terminal prompts
// (survey). Each answer is checked against its field rule before moving on;
// the tech stack is collected one entry at a time. After submission the
// summary is rendered through a render.Registry format.
package prompt

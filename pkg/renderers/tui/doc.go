// Package tui is the interactive terminal front end of the profile form,
// built on bubbletea.
//
// Keys: tab/shift+tab (or up/down) move between fields, left/right pick the
// gender, enter on the tech stack adds the typed entry, left/right on an empty
// tech stack input selects an entry and delete removes it, ctrl+s or enter on
// the submit button submits, ctrl+c or esc quits.
package tui

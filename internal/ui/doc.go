// Package ui implements the showtrack terminal interface with Bubble Tea.
//
// The Model owns a *state.App and is the only code that mutates it, one
// message at a time. Keys and mouse events are dispatched by App mode;
// ticks drive App.Tick, which loads the show list through the data manager.
//
// Opening a show's seasons runs the remote lookup as a tea.Cmd. While it is
// outstanding the App reports Loading and the Model drops every key except
// ctrl+c, so at most one lookup is ever in flight. The result comes back as
// a detailMsg and is applied on the loop.
//
// A fatal App error stops the program and is returned from Run.
package ui

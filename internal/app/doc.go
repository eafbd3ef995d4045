// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the slot backend it names, the
// persistence port on top of it and the market store, exposing them via the
// Wire struct for commands to use.
package app

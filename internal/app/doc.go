// Package app wires a scenario, the search engine, the observation hooks
// and the optional stream transport into one command-line run.
package app

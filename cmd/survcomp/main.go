// Package main provides the entry point for the survcomp CLI.
//
// survcomp compares a simulated radio survey of ultracompact HII regions
// against the observed CORNISH catalog. It bins galactic longitude,
// latitude, and heliocentric distance for both catalogs and renders them
// as overlaid step histograms in a three-panel figure.
//
// Usage:
//
//	survcomp plot <variant>
//	survcomp stats <variant>
//
// See --help for all available options.
package main

// main is the entry point for survcomp.
func main() {
	Execute()
}

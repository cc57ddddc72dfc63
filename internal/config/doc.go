// Package config assembles the immutable per-run configuration of survcomp.
//
// Configuration is built once at the entry point from CLI flags and an
// optional .survcomp yaml file, validated, and passed explicitly into the
// loading and rendering code. Nothing in the core logic reads ambient
// process state.
//
// The package also owns path derivation: the mapping from (variant id,
// survey suffix) to the simulated-survey file and the output figure is a
// pure function here, so it can be tested without touching a filesystem.
package config

// Package runner drives one co-simulation of an extracted FMU from a run
// configuration: instantiate, initialize with start values, step from start
// to stop time while sampling outputs, then terminate and free.
package runner

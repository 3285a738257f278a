// Package fmu reads FMI 2.0 archives: it extracts the .fmu zip, parses
// modelDescription.xml and locates the shared library for the running
// platform.
package fmu

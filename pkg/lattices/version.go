// Package lattices carries module-level metadata shared by the library
// packages and the setcalc CLI.
package lattices

// Version is the current module version.
const Version = "0.1.0"

// Package options resolves the named password length categories accepted on
// the command line into the numeric average length used by the generator.
package options

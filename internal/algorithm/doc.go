// Package algorithm contains the password generation pipeline. An Algorithm
// holds an ordered list of Generators and folds them over an accumulating
// string, threading a single random source through every Generator of a run.
//
// The package has no error channel: a Generator is expected to always return
// a value, and an empty Algorithm generates the empty string.
//
// An Algorithm is not safe for concurrent use. Generators must all be added
// before Generate is called from more than one place.
package algorithm

// Package registry connects recipes to compiled strategies.
//
// Every strategy package exposes a Module that registers one or more
// strategy types under the names used in recipe files. Before a pipeline is
// assembled, ValidateRecipe checks that the recipe and the Go input structs
// agree: every strategy type exists, every argument is declared by the input
// struct, required arguments are present and literal values have a
// compatible type. Assemble then decodes each step and appends the built
// generators to an algorithm.Algorithm in recipe order.
package registry

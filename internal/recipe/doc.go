// Package recipe loads password recipes: HCL files listing the strategies of
// a generation pipeline in the order they run.
//
// A recipe is a sequence of `strategy "<type>" "<name>"` blocks. The block
// body holds the strategy arguments as plain attributes. Arguments are kept
// as unevaluated hcl.Expression values until a pipeline is assembled, at
// which point they are evaluated against EvalContext and bound to a Go input
// struct by Converter. Expressions can use the variable `length`, the average
// password length of the requested category, and a small set of functions
// (min, max, abs, floor, ceil, upper, lower):
//
//	strategy "words" "head" {
//	  list       = "adjective"
//	  capitalize = true
//	}
//
//	strategy "characters" "digits" {
//	  class = "digit"
//	  count = max(1, floor(length / 8))
//	}
//
// When several files are loaded, directories are expanded in lexical order
// and the blocks of every file are appended in file order.
package recipe

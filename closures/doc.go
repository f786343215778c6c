// Package closures demonstrates functions that capture variables from their enclosing scope.
//
// Each constructor returns a func value that keeps its own captured state:
// a message to print, a running count, a greeting, or a memo table.
// Two values built by the same constructor never share that state.
package closures

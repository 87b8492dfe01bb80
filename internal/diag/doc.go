// Package diag is the diagnostic subsystem of the tank front end.
//
// Diagnostics are append-only: the lexer and parser keep going after
// recording a problem so one pass surfaces as many genuine errors as
// possible. Any Error-severity entry in the bag blocks output generation;
// warnings never do. Fatal internal-consistency failures (symbol table
// violations) are NOT diagnostics — they travel as Go errors and abort the
// compile outright.
package diag

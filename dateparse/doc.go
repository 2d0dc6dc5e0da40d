// Package dateparse consumes input text against a compiled pattern.Format,
// filling a ParsedFields record one segment at a time, then reconciles
// the record into a caldate.ZonedDateTime. It sits on top of pattern.Format
// the way a decoder sits on top of a lexer: pattern tokenizes without
// interpreting, dateparse interprets.
package dateparse

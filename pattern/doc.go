// Package pattern compiles CLDR/ICU-style date/time format strings (e.g.
// "YYYY-MM-dd'T'HH:mm:ssX") into a Format: a bounded, ordered sequence of
// Segments. The compiler never interprets the meaning of a directive; it
// only tokenizes runs of identical directive letters, quoted literal
// text, and backslash escapes. Interpreting a compiled Format against
// input text is the job of the sibling dateparse package.
package pattern

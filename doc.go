// Package caldate implements calendar arithmetic and conversion for the
// proleptic Gregorian, Julian, and traditional Hebrew calendars, using a
// signed day-number as the common interchange format between them.
//
// The calendrical algorithms are adapted from the Julian Day Number
// formulas discussed in:
//
// Dershowitz, Nachum, and Edward Reingold. 1990. "Calendrical Calculations",
// Software - Practice and Experience, 20 (9), 899-928.
//
// The Hebrew calendar's molad and dechiyot (postponement) arithmetic follows
// the same reference.
//
// Sub-packages pattern and dateparse implement the format-string grammar
// and the field-filling date/time parser built on top of it.
package caldate

// Package converter provides the typed value parsers used by route
// pattern placeholders. Each converter pairs a regular expression
// fragment, used by the pattern compiler to build the route regexp,
// with a conversion function that parses the captured text.
//
// The registry is fixed at three kinds:
//
//   - int: runs of digits, converted to int. Texts that overflow the
//     platform int fail conversion and surface as a request failure.
//   - string: any run of characters excluding '/', returned verbatim.
//   - float: digits '.' digits, converted to float64. Bare integers and
//     exponent notation do not match.
//
// Converters are immutable package state; Lookup is safe for concurrent
// use.
package converter

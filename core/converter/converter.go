package converter

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnknownKind is returned when a pattern references a converter
	// name outside the registered set.
	ErrUnknownKind = errors.New("unknown converter kind")

	// ErrConversion is returned when captured text fails its converter's
	// own contract. The dispatcher only converts text already matched by
	// the converter's regex fragment, so hitting this indicates an
	// internal invariant violation rather than bad client input.
	ErrConversion = errors.New("conversion failed")
)

// Converter validates and converts the text captured by a placeholder.
// Pattern is a regular expression fragment (no anchors, no groups) that
// the pattern compiler embeds into the route regexp; Convert parses the
// captured text into its typed value.
type Converter struct {
	Name    string
	Pattern string
	Convert func(raw string) (any, error)
}

// registry is the fixed process-wide converter set. It is never mutated
// after package initialization, which keeps concurrent dispatch safe.
var registry = map[string]Converter{
	"int": {
		Name:    "int",
		Pattern: `\d+`,
		Convert: func(raw string) (any, error) {
			v, err := strconv.Atoi(raw)
			if err != nil {
				// Overflow of the platform int lands here as well.
				return nil, fmt.Errorf("%w: %q is not a valid int: %v", ErrConversion, raw, err)
			}
			return v, nil
		},
	},
	"string": {
		Name:    "string",
		Pattern: `[^/]+`,
		Convert: func(raw string) (any, error) {
			return raw, nil
		},
	},
	"float": {
		Name:    "float",
		Pattern: `\d+\.\d+`,
		Convert: func(raw string) (any, error) {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a valid float: %v", ErrConversion, raw, err)
			}
			return v, nil
		},
	},
}

// Lookup returns the converter registered under name.
func Lookup(name string) (Converter, error) {
	c, ok := registry[name]
	if !ok {
		return Converter{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return c, nil
}

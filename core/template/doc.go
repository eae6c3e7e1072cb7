// Package template implements the literal placeholder substitution used
// by the response renderer. It is intentionally not a template engine:
// "{{ name }}" tokens are replaced byte-for-byte with their values, no
// expressions, no escaping, and unresolved tokens pass through
// unchanged. html/template would escape and parse its input, changing
// the observable output, which is why this helper exists.
package template

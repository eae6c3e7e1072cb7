// Package response turns handler output and dispatch failures into HTTP
// payloads. Every response in this framework is text/html; WriteHTML
// handles the success path and ErrorPage produces the rendered
// not-found and failure pages from the embedded error template.
package response

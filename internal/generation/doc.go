// Package generation defines the interfaces and shared error types for the
// generative text and image services, plus response-normalization helpers.
package generation

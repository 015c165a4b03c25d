// Package service contains the application services that orchestrate
// generation, fallbacks and persistence: suggestion listing with the static
// dictionary fallback, the tiered image pipeline, card assembly, the
// verse-of-the-day cache and share captions.
package service

// Package store defines the persistence interfaces for the gallery and the
// verse-of-the-day cache, independent of any concrete backend. Concrete
// adapters live under internal/platform.
package store

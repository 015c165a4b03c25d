// Package domain contains the core business entities and value objects of
// the application: verse suggestions, generated verse cards and the verse of
// the day cache entry. It is independent of any specific infrastructure or
// delivery mechanism.
package domain

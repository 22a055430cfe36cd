// Package kernel contains shared value objects used across the domain model.
//
// Value objects here are immutable and validated at construction time. The
// zero value of each type is invalid; always use the provided constructors.
package kernel

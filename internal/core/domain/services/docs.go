// Package services contains stateless domain services that operate across
// aggregates. The demo data generator lives here: it builds a randomized but
// internally consistent snapshot of drivers and orders against the domain
// model directly, and is shared by the administrative reset endpoint and the
// offline seeding binary so both produce statistically equivalent data.
package services

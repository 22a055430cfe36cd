// Package driver contains the Driver aggregate. The driver registry is the
// sole authority on driver records and on the availability flag that gates
// order assignment.
package driver

// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through four statuses (PENDING, ASSIGNED, IN_TRANSIT,
// DELIVERED) and records a milestone timestamp for each of the last three.
// The aggregate stamps milestones reactively whenever the matching status is
// written and implements the assignment/reassignment rules that keep driver
// references consistent with delivery progress.
package order

// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package cards

// Action is the enumeration of card state transitions accepted by the
// service.
type Action string

const (
	ActionSuspend Action = "suspend"
	ActionResume  Action = "resume"
	ActionUnlink  Action = "unlink"
)

// String representation of the Action
func (o Action) String() string {
	return string(o)
}

func (o Action) valid() bool {
	switch o {
	case ActionSuspend, ActionResume, ActionUnlink:
		return true
	}

	return false
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package selection stores which container record each explorer instance has
selected.

The state is ephemeral and session-scoped: it is created empty on first read,
overwritten by the select endpoint, and expires with the owning session. Writes
are last-write-wins; overwriting a single key with the same id is idempotent.
*/
package selection

import "context"

// Key identifies one explorer instance within one session.
type Key struct {
	Session  string
	Explorer string
}

// State is the selection of one explorer instance.
type State struct {
	// SelectedContainerID is nil until a container record is selected.
	SelectedContainerID *string `json:"selectedContainerId"`
}

// Selected returns the selected container id, if any.
func (s State) Selected() (string, bool) {
	if s.SelectedContainerID == nil {
		return "", false
	}
	return *s.SelectedContainerID, true
}

// Select returns a state holding id.
func Select(id string) State {
	return State{SelectedContainerID: &id}
}

// Repository defines the storage contract for selection state.
type Repository interface {

	/*
		Get returns the state for key. A key that was never written yields an
		empty State and no error.
	*/
	Get(context context.Context, key Key) (State, error)

	/*
		Set overwrites the state for key.
	*/
	Set(context context.Context, key Key, state State) error
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"

	"github.com/pdiddy/paper-md/pkg/types"
)

// State is the position of one document in the fallback state machine.
type State int

const (
	// StateAttemptingVision is the initial state of every document.
	StateAttemptingVision State = iota
	// StateAttemptingText is entered only after the vision attempt failed.
	StateAttemptingText
	// StateDone means one attempt produced an output file.
	StateDone
	// StateFailed means both attempts failed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAttemptingVision:
		return "attempting-vision"
	case StateAttemptingText:
		return "attempting-text"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further attempt follows s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// mode returns the generation mode attempted in s.
func (s State) mode() (types.Mode, bool) {
	switch s {
	case StateAttemptingVision:
		return types.ModeVision, true
	case StateAttemptingText:
		return types.ModeText, true
	}
	return 0, false
}

// next returns the state that follows an attempt in s.
func (s State) next(succeeded bool) State {
	if succeeded {
		return StateDone
	}
	if s == StateAttemptingVision {
		return StateAttemptingText
	}
	return StateFailed
}

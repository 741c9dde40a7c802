package core

import "time"

// Action represents a semantic game action, abstracted from physical input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A, H - nudge the hovering duck left
	ActionMoveRight        // Right arrow, D, L - nudge the hovering duck right
	ActionDragTo           // Mouse drag - move the hovering duck to an absolute x
	ActionDrop             // Space, Down - release the duck
	ActionConfirm          // Enter - start from menu, continue after level-up
	ActionRestart          // R - restart after game over
	ActionBack             // B, Escape - leave the game
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionDragTo:
		return "DragTo"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one queued input. X carries the design-space target for
// ActionDragTo and is zero otherwise.
type InputEvent struct {
	Action Action
	X      float64
	At     time.Duration // Offset since the session started, informational only
}

// InputFrame collects the input events received between two simulation ticks.
// Events are kept in arrival order and applied at the start of the next tick.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set queues an action without a payload.
func (f *InputFrame) Set(a Action) {
	f.Push(InputEvent{Action: a})
}

// Push queues an input event.
func (f *InputFrame) Push(ev InputEvent) {
	if ev.Action == ActionNone {
		return
	}
	f.events = append(f.events, ev)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Events returns the queued events in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]InputEvent, len(f.events))}
	copy(clone.events, f.events)
	return clone
}

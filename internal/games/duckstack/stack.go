package duckstack

// Stack is the ordered list of static ducks. Index 0 is the base on the
// ground, the last element is the topmost landed duck.
type Stack []Duck

// Len returns the number of ducks including the base.
func (s Stack) Len() int {
	return len(s)
}

// Base returns the ground duck. The stack must not be empty.
func (s Stack) Base() Duck {
	return s[0]
}

// Top returns the topmost duck. The stack must not be empty.
func (s Stack) Top() Duck {
	return s[len(s)-1]
}

// Clone returns an independent copy.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// CenterOfMass returns the area-weighted mean x of the stack.
func (s Stack) CenterOfMass() float64 {
	var sum, mass float64
	for _, d := range s {
		sum += d.X * d.Area()
		mass += d.Area()
	}
	if mass == 0 {
		return 0
	}
	return sum / mass
}

// COMOffset returns the center of mass relative to the base duck center.
func (s Stack) COMOffset() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.CenterOfMass() - s.Base().X
}

// shiftX moves every duck horizontally, used when the design width changes.
func (s Stack) shiftX(dx float64) {
	for i := range s {
		s[i].X += dx
	}
}

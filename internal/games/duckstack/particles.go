package duckstack

import "math"

const (
	particleGravity = 900.0 // px/s^2
	particleLife    = 0.6   // seconds
	maxParticles    = 256
)

// Particle is a short-lived visual spark. Particles never affect gameplay.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // seconds left
	MaxLife float64
	Color   string
}

// Particles is a bounded particle pool.
type Particles struct {
	P []Particle
}

// Burst spawns n particles on evenly spaced angles around (x, y). Speeds vary
// by index so bursts look irregular while staying deterministic.
func (ps *Particles) Burst(x, y float64, n int, speed float64, color string) {
	for i := 0; i < n; i++ {
		if len(ps.P) >= maxParticles {
			return
		}
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		s := speed * (0.6 + 0.4*float64((i*7)%n)/float64(n))
		ps.P = append(ps.P, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * s,
			VY:      math.Sin(angle) * s,
			Life:    particleLife,
			MaxLife: particleLife,
			Color:   color,
		})
	}
}

// Update moves particles and drops expired ones.
func (ps *Particles) Update(dt float64) {
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY += particleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	ps.P = alive
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.P = ps.P[:0]
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.P)
}

// Package projectile flies a point through a constant environment, one
// tick at a time, using the tuple algebra from gosieray.
package projectile

import (
	"fmt"
	"log"

	"github.com/smasonuk/gosieray"
)

// DefaultMaxTicks bounds Run for projectiles that never come down.
const DefaultMaxTicks = 100000

type Projectile struct {
	Position gosieray.Tuple
	Velocity gosieray.Tuple
}

type Environment struct {
	Gravity gosieray.Tuple
	Wind    gosieray.Tuple
}

// NewEnvironment pulls down with gravity and pushes toward -x with wind.
func NewEnvironment(gravity, wind float64) Environment {
	return Environment{
		Gravity: gosieray.NewVector(0, -gravity, 0),
		Wind:    gosieray.NewVector(-wind, 0, 0),
	}
}

type Option func(*Simulation)

// WithLogger sends position reports to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithMaxTicks sets how many ticks Run allows before giving up.
// Panics if n is not positive.
func WithMaxTicks(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("projectile: max ticks must be > 0, got %d", n))
	}
	return func(s *Simulation) {
		s.maxTicks = n
	}
}

type Simulation struct {
	projectile Projectile
	env        Environment
	logger     *log.Logger
	maxTicks   int
}

func NewSimulation(position, velocity gosieray.Tuple, env Environment, opts ...Option) *Simulation {
	s := &Simulation{
		projectile: Projectile{Position: position, Velocity: velocity},
		env:        env,
		logger:     log.Default(),
		maxTicks:   DefaultMaxTicks,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulation) Projectile() Projectile {
	return s.projectile
}

// Tick moves the projectile by its velocity, then applies the environment
// to the velocity.
func (s *Simulation) Tick() {
	p := &s.projectile
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Add(s.env.Gravity).Add(s.env.Wind)
}

func (s *Simulation) report() {
	pos := s.projectile.Position
	s.logger.Printf("Position: (%g, %g, %g)", pos.X, pos.Y, pos.Z)
}

// Run ticks until the projectile is at or below y = 0 and returns every
// position it passed through, starting with the current one and ending
// with the landing position.
func (s *Simulation) Run() ([]gosieray.Tuple, error) {
	trail := []gosieray.Tuple{s.projectile.Position}
	for ticks := 0; s.projectile.Position.Y > 0; ticks++ {
		if ticks == s.maxTicks {
			return trail, fmt.Errorf("after %d ticks at %v: %w", ticks, s.projectile.Position, ErrNoLanding)
		}
		s.report()
		s.Tick()
		trail = append(trail, s.projectile.Position)
	}
	s.report()
	return trail, nil
}

// Package sim advances a world by one frame.
//
// A step applies the frame intent, moves the player, advances bullets and
// resolves their hits, replaces killed enemies, runs the enemy AI and
// scrolls chase-cam scenery. It never fails and never draws.
package sim

import (
	"math"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/input"
	"github.com/tomz197/pseudo3d/internal/object"
	"github.com/tomz197/pseudo3d/internal/physics"
	"github.com/tomz197/pseudo3d/internal/world"
)

// EventKind identifies an externally visible change.
type EventKind int

const (
	// EventScore carries the new kill count.
	EventScore EventKind = iota
	// EventHealth carries the new player health.
	EventHealth
	// EventGameOver fires once when health reaches zero.
	EventGameOver
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventHealth:
		return "health"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a change produced by a step, in the order it happened.
type Event struct {
	Kind  EventKind
	Value int
}

// Stepper advances worlds. It keeps scratch buffers between frames and must
// not be shared between goroutines.
type Stepper struct {
	grid *physics.SpatialHash
	dead []bool
}

// NewStepper creates a stepper.
func NewStepper() *Stepper {
	return &Stepper{
		grid: physics.NewSpatialHash(config.HitRadius),
	}
}

// Step advances w by one frame using a fresh stepper.
func Step(w *world.World, in input.Intent) []Event {
	return NewStepper().Step(w, in)
}

// Step advances w by one frame and returns the events it produced. A world
// that is already over is left untouched.
func (s *Stepper) Step(w *world.World, in input.Intent) []Event {
	if w.GameOver {
		return nil
	}
	var events []Event

	if w.Scene.Walking() {
		w.Player.Angle = in.Facing
		w.CursorX, w.CursorY = in.PointerX, in.PointerY

		if w.Scene.Combat() {
			for i := 0; i < in.Shots; i++ {
				w.Bullets = append(w.Bullets, object.NewBullet(w.Player.X, w.Player.Z, w.Player.Angle))
			}
		}
		movePlayer(&w.Player, in)
	}

	if w.Scene.Combat() {
		events = s.updateBullets(w, events)
		events = updateEnemies(w, events)
	}

	for _, d := range w.Drifters {
		d.Drift(w.Rand(), w.View)
	}

	w.Time += config.TimeStep
	w.Frame++
	return events
}

// movePlayer applies the held movement keys along the facing angle.
func movePlayer(p *world.Player, in input.Intent) {
	const speed = config.PlayerSpeed
	if in.Forward {
		p.X += math.Cos(p.Angle) * speed
		p.Z += math.Sin(p.Angle) * speed
	}
	if in.Back {
		p.X -= math.Cos(p.Angle) * speed
		p.Z -= math.Sin(p.Angle) * speed
	}
	if in.Left {
		p.X += math.Cos(p.Angle-math.Pi/2) * speed
		p.Z += math.Sin(p.Angle-math.Pi/2) * speed
	}
	if in.Right {
		p.X += math.Cos(p.Angle+math.Pi/2) * speed
		p.Z += math.Sin(p.Angle+math.Pi/2) * speed
	}
}

// updateBullets advances every bullet, drops those out of range and resolves
// hits. A bullet hits the first live enemy in slice order within the hit
// radius. Killed enemies are removed after the pass and each one is
// replaced by a fresh enemy appended after the survivors.
func (s *Stepper) updateBullets(w *world.World, events []Event) []Event {
	s.grid.Clear()
	for i, e := range w.Enemies {
		s.grid.Insert(e.X, e.Z, i)
	}
	if cap(s.dead) < len(w.Enemies) {
		s.dead = make([]bool, len(w.Enemies))
	}
	dead := s.dead[:len(w.Enemies)]
	clear(dead)

	kills := 0
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Advance()
		if b.OutOfRange() {
			continue
		}

		hit := -1
		s.grid.QueryAround(b.X, b.Z, func(idx int) bool {
			e := w.Enemies[idx]
			if dead[idx] || (hit >= 0 && idx > hit) {
				return false
			}
			if physics.Within(b.X, b.Z, e.X, e.Z, config.HitRadius) {
				hit = idx
			}
			return false
		})
		if hit < 0 {
			kept = append(kept, b)
			continue
		}

		e := w.Enemies[hit]
		e.Health -= config.BulletDamage
		if e.Health <= 0 {
			dead[hit] = true
			kills++
			w.Player.Kills++
			events = append(events, Event{Kind: EventScore, Value: w.Player.Kills})
		}
	}
	clear(w.Bullets[len(kept):])
	w.Bullets = kept

	if kills > 0 {
		survivors := w.Enemies[:0]
		for i, e := range w.Enemies {
			if !dead[i] {
				survivors = append(survivors, e)
			}
		}
		clear(w.Enemies[len(survivors):])
		w.Enemies = survivors
		for i := 0; i < kills; i++ {
			w.Enemies = append(w.Enemies, w.SpawnEnemy())
		}
	}
	return events
}

// updateEnemies recomputes every enemy's state from its distance to the
// player. Within the chase radius it turns toward the player and moves;
// within the shoot radius it also counts down and fires. When the player's
// health reaches zero the pass stops and the world is over.
func updateEnemies(w *world.World, events []Event) []Event {
	p := &w.Player
	for _, e := range w.Enemies {
		dx := p.X - e.X
		dz := p.Z - e.Z
		dist := math.Sqrt(dx*dx + dz*dz)

		if dist >= config.ChaseRadius {
			e.State = object.EnemyIdle
			continue
		}

		e.State = object.EnemyChase
		e.Angle = math.Atan2(dz, dx)
		e.X += math.Cos(e.Angle) * config.EnemySpeed
		e.Z += math.Sin(e.Angle) * config.EnemySpeed

		if dist >= config.ShootRadius {
			continue
		}
		e.State = object.EnemyShoot
		e.Cooldown--
		if e.Cooldown > 0 {
			continue
		}

		p.Health = max(p.Health-config.EnemyDamage, 0)
		e.Cooldown = config.ShootCooldownFrames
		events = append(events, Event{Kind: EventHealth, Value: p.Health})

		if p.Health <= 0 {
			w.GameOver = true
			events = append(events, Event{Kind: EventGameOver})
			break
		}
	}
	return events
}

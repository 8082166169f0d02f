package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// EnemyState is the behaviour an enemy shows this frame. It is recomputed
// from distance every frame.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyChase
	EnemyShoot
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyChase:
		return "chase"
	case EnemyShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Enemy is a hostile that chases and shoots the player.
type Enemy struct {
	X, Z     float64
	Health   int
	Angle    float64
	State    EnemyState
	Cooldown int // Frames until the next shot while in range
}

// EnemyTuning projects enemies: size max(20, 1000/d), culled beyond 1000 or
// 100 units outside the viewport.
var EnemyTuning = projection.Tuning{
	BaseScale:   1000,
	MinScale:    20,
	MaxDistance: 1000,
	Horizon:     config.HorizonOffset,
	Margin:      config.ScreenCullSlack,
}

var (
	colorEnemy      = draw.Hex("#f59e0b")
	colorEnemyShoot = draw.Hex("#ef4444")
)

// NewEnemy creates an idle enemy at full health.
func NewEnemy(x, z, angle float64) *Enemy {
	return &Enemy{
		X:        x,
		Z:        z,
		Health:   config.EnemyHealth,
		Angle:    angle,
		State:    EnemyIdle,
		Cooldown: config.ShootCooldownFrames,
	}
}

// SpawnEnemy creates an enemy at a uniform position inside the world bounds.
func SpawnEnemy(rng *rand.Rand) *Enemy {
	return NewEnemy(
		(rng.Float64()-0.5)*2*config.WorldHalfExtent,
		(rng.Float64()-0.5)*2*config.WorldHalfExtent,
		rng.Float64()*2*math.Pi,
	)
}

// Position implements Scenery.
func (e *Enemy) Position() projection.Vec3 {
	return projection.Vec3{X: e.X, Z: e.Z}
}

// Alive reports whether the enemy has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Draw renders the body, eyes and health bar.
func (e *Enemy) Draw(ctx DrawContext) {
	p, ok := ctx.Projector.Project(ctx.Eye, e.Position(), EnemyTuning)
	if !ok {
		return
	}
	s := ctx.Surface
	size := p.Scale

	body := colorEnemy
	if e.State == EnemyShoot {
		body = colorEnemyShoot
	}
	s.FillCircle(p.X, p.Y, size, body)

	s.FillCircle(p.X-size*0.3, p.Y-size*0.2, size*0.2, colorBlack)
	s.FillCircle(p.X+size*0.3, p.Y-size*0.2, size*0.2, colorBlack)

	barY := p.Y - size - 15
	s.FillRect(p.X-size, barY, size*2, 5, colorHealthBad)
	health := math.Max(0, float64(e.Health)) / config.EnemyHealth
	s.FillRect(p.X-size, barY, health*size*2, 5, colorHealthOK)
}

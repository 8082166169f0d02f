package config

import "time"

// Tunable game parameters. Distances are world units, speeds are units per frame.

// Viewport - the logical drawing space. Surfaces scale it to their pixel size.
const (
	ViewWidth  = 1200
	ViewHeight = 800
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	TimeStep        = 0.015 // Scene clock advance per frame (sway, hue cycling)
)

// Player
const (
	PlayerSpeed   = 5.0
	InitialHealth = 100
	MaxHealth     = 100
)

// Bullets
const (
	BulletSpeed  = 15.0
	BulletRange  = 2000.0 // Distance from world origin before removal
	BulletDamage = 50
	HitRadius    = 20.0
)

// Enemies
const (
	InitialEnemies      = 10
	EnemyHealth         = 100
	EnemySpeed          = 2.0
	ChaseRadius         = 500.0
	ShootRadius         = 300.0
	EnemyDamage         = 10
	ShootCooldownFrames = 60
)

// World
const (
	WorldHalfExtent = 1000.0 // Enemies spawn uniformly in [-1000, 1000] on both axes
	TreeHalfExtent  = 1250.0
	InitialTrees    = 80
	PlazaSize       = 200.0
)

// Projection
const (
	ProjectionK     = 0.5 // Horizontal spread of the weak-perspective formula
	MinDistance     = 1.0 // Divisor floor for perspective scale
	DepthFocal      = 600.0
	DepthMax        = 1500.0
	DepthNearPlane  = 1.0
	HorizonOffset   = -50.0 // Screen offset from the vertical centre for upright entities
	ScreenCullSlack = 100.0
)

// Chase-cam scenes
const (
	InitialParticles = 200
	InitialGrass     = 240
	InitialClouds    = 12
	MeadowTrees      = 30
	MeadowSpeed      = 4.0
	CloudSpeed       = 1.5
)

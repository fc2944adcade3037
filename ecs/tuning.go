package ecs

import "github.com/jakecoffman/cp"

// Tuning holds every empirically tuned constant of the simulation. Values are
// per-frame quantities at 60 frames per second.
type Tuning struct {
	// Playfield
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`

	BallRadius   float64 `yaml:"ball_radius"`
	Colors       int     `yaml:"colors"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`

	// Aiming & launch
	ShootSpeed     float64 `yaml:"shoot_speed"`
	MaxAimDistance float64 `yaml:"max_aim_distance"`
	AimSmoothing   float64 `yaml:"aim_smoothing"`
	PowerDivisor   float64 `yaml:"power_divisor"`
	MinPower       float64 `yaml:"min_power"`
	MaxPower       float64 `yaml:"max_power"`

	// Free flight
	Restitution        float64 `yaml:"restitution"`
	FlightDamping      float64 `yaml:"flight_damping"`
	FlightSlowSpeed    float64 `yaml:"flight_slow_speed"`
	FlightAttractRange float64 `yaml:"flight_attract_range"`
	FlightAttraction   float64 `yaml:"flight_attraction"`
	MomentumTransfer   float64 `yaml:"momentum_transfer"`
	StallFrames        int     `yaml:"stall_frames"`

	// Cluster force model
	SeparationForce     float64 `yaml:"separation_force"`
	Stiffness           float64 `yaml:"stiffness"`
	SpringNeighborRatio float64 `yaml:"spring_neighbor_ratio"`
	SpringLooseRatio    float64 `yaml:"spring_loose_ratio"`
	SpringLooseFactor   float64 `yaml:"spring_loose_factor"`
	RestForce           float64 `yaml:"rest_force"`
	ClusterAttraction   float64 `yaml:"cluster_attraction"`
	ClusterFarDistance  float64 `yaml:"cluster_far_distance"`
	ClusterFarBoost     float64 `yaml:"cluster_far_boost"`
	ClusterMaxSpeed     float64 `yaml:"cluster_max_speed"`
	ProjectilePullRatio float64 `yaml:"projectile_pull_ratio"`
	FallbackOffsetY     float64 `yaml:"fallback_offset_y"`
	AntiGravity         float64 `yaml:"anti_gravity"`
	MaxRiseSpeed        float64 `yaml:"max_rise_speed"`
	BodyDamping         float64 `yaml:"body_damping"`
	MaxSpeed            float64 `yaml:"max_speed"`
	VelocityEpsilon     float64 `yaml:"velocity_epsilon"`
	DistanceEpsilon     float64 `yaml:"distance_epsilon"`
	BoundsMargin        float64 `yaml:"bounds_margin"`

	// Support propagation
	TopContactTolerance   float64 `yaml:"top_contact_tolerance"`
	SupportNeighborFactor float64 `yaml:"support_neighbor_factor"`
	SupportMaxPasses      int     `yaml:"support_max_passes"`

	// Matching
	MatchNeighborFactor float64 `yaml:"match_neighbor_factor"`
	MinGroupSize        int     `yaml:"min_group_size"`
	BombRadius          float64 `yaml:"bomb_radius"`
	JitterAmount        float64 `yaml:"jitter_amount"`
	ParticlesPerBody    int     `yaml:"particles_per_body"`
	ParticlesPerBlast   int     `yaml:"particles_per_blast"`

	// Termination
	EndlessMaxBodies  int     `yaml:"endless_max_bodies"`
	LevelMaxBodies    int     `yaml:"level_max_bodies"`
	DangerLineOffset  float64 `yaml:"danger_line_offset"`
	EndlessPopulation int     `yaml:"endless_population"`
}

// DefaultTuning returns the baseline feel values for a 450x800 portrait
// playfield with 15 unit balls.
func DefaultTuning() Tuning {
	return Tuning{
		Left:   10,
		Top:    60,
		Right:  440,
		Bottom: 750,

		BallRadius:   15,
		Colors:       6,
		SpawnOffsetY: 30,

		ShootSpeed:     17,
		MaxAimDistance: 150,
		AimSmoothing:   0.25,
		PowerDivisor:   50,
		MinPower:       0.3,
		MaxPower:       1.5,

		Restitution:        0.7,
		FlightDamping:      0.99,
		FlightSlowSpeed:    2,
		FlightAttractRange: 60,
		FlightAttraction:   0.02,
		MomentumTransfer:   0.1,
		StallFrames:        180,

		SeparationForce:     0.5,
		Stiffness:           0.02,
		SpringNeighborRatio: 2.5,
		SpringLooseRatio:    2.2,
		SpringLooseFactor:   0.3,
		RestForce:           0.005,
		ClusterAttraction:   0.0005,
		ClusterFarDistance:  100,
		ClusterFarBoost:     2,
		ClusterMaxSpeed:     3,
		ProjectilePullRatio: 0.3,
		FallbackOffsetY:     100,
		AntiGravity:         0.05,
		MaxRiseSpeed:        1.5,
		BodyDamping:         0.9,
		MaxSpeed:            8,
		VelocityEpsilon:     0.01,
		DistanceEpsilon:     1e-6,
		BoundsMargin:        0,

		TopContactTolerance:   1,
		SupportNeighborFactor: 2.2,
		SupportMaxPasses:      256,

		MatchNeighborFactor: 2.2,
		MinGroupSize:        4,
		BombRadius:          80,
		JitterAmount:        0.5,
		ParticlesPerBody:    10,
		ParticlesPerBlast:   30,

		EndlessMaxBodies:  100,
		LevelMaxBodies:    120,
		DangerLineOffset:  80,
		EndlessPopulation: 60,
	}
}

// Sanitize replaces unusable values with their defaults so a partial or
// hand-edited tuning file can never destabilise the solver.
func (t Tuning) Sanitize() Tuning {
	d := DefaultTuning()
	pos := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}
	nonNeg := func(v *float64, def float64) {
		if *v < 0 {
			*v = def
		}
	}
	unit := func(v *float64, def float64) {
		if *v <= 0 || *v > 1 {
			*v = def
		}
	}
	posInt := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}

	if t.Right <= t.Left || t.Bottom <= t.Top {
		t.Left, t.Top, t.Right, t.Bottom = d.Left, d.Top, d.Right, d.Bottom
	}
	pos(&t.BallRadius, d.BallRadius)
	// Three colors is the minimum that keeps the no-triple layout guarantee.
	if t.Colors < 3 {
		t.Colors = d.Colors
	}
	if t.Colors > 255 {
		t.Colors = 255
	}
	pos(&t.SpawnOffsetY, d.SpawnOffsetY)

	pos(&t.ShootSpeed, d.ShootSpeed)
	pos(&t.MaxAimDistance, d.MaxAimDistance)
	unit(&t.AimSmoothing, d.AimSmoothing)
	pos(&t.PowerDivisor, d.PowerDivisor)
	pos(&t.MinPower, d.MinPower)
	if t.MaxPower < t.MinPower {
		t.MinPower, t.MaxPower = d.MinPower, d.MaxPower
	}

	unit(&t.Restitution, d.Restitution)
	unit(&t.FlightDamping, d.FlightDamping)
	nonNeg(&t.FlightSlowSpeed, d.FlightSlowSpeed)
	nonNeg(&t.FlightAttractRange, d.FlightAttractRange)
	nonNeg(&t.FlightAttraction, d.FlightAttraction)
	unit(&t.MomentumTransfer, d.MomentumTransfer)
	if t.StallFrames < 0 {
		t.StallFrames = d.StallFrames
	}

	nonNeg(&t.SeparationForce, d.SeparationForce)
	nonNeg(&t.Stiffness, d.Stiffness)
	pos(&t.SpringNeighborRatio, d.SpringNeighborRatio)
	pos(&t.SpringLooseRatio, d.SpringLooseRatio)
	unit(&t.SpringLooseFactor, d.SpringLooseFactor)
	nonNeg(&t.RestForce, d.RestForce)
	nonNeg(&t.ClusterAttraction, d.ClusterAttraction)
	pos(&t.ClusterFarDistance, d.ClusterFarDistance)
	pos(&t.ClusterFarBoost, d.ClusterFarBoost)
	pos(&t.ClusterMaxSpeed, d.ClusterMaxSpeed)
	nonNeg(&t.ProjectilePullRatio, d.ProjectilePullRatio)
	nonNeg(&t.FallbackOffsetY, d.FallbackOffsetY)
	nonNeg(&t.AntiGravity, d.AntiGravity)
	pos(&t.MaxRiseSpeed, d.MaxRiseSpeed)
	unit(&t.BodyDamping, d.BodyDamping)
	pos(&t.MaxSpeed, d.MaxSpeed)
	nonNeg(&t.VelocityEpsilon, d.VelocityEpsilon)
	pos(&t.DistanceEpsilon, d.DistanceEpsilon)
	nonNeg(&t.BoundsMargin, d.BoundsMargin)

	nonNeg(&t.TopContactTolerance, d.TopContactTolerance)
	// Integrate anchors anything clamped to the top edge; support must agree.
	if t.TopContactTolerance < t.BoundsMargin {
		t.TopContactTolerance = t.BoundsMargin
	}
	pos(&t.SupportNeighborFactor, d.SupportNeighborFactor)
	posInt(&t.SupportMaxPasses, d.SupportMaxPasses)

	pos(&t.MatchNeighborFactor, d.MatchNeighborFactor)
	posInt(&t.MinGroupSize, d.MinGroupSize)
	pos(&t.BombRadius, d.BombRadius)
	nonNeg(&t.JitterAmount, d.JitterAmount)
	if t.ParticlesPerBody < 0 {
		t.ParticlesPerBody = d.ParticlesPerBody
	}
	if t.ParticlesPerBlast < 0 {
		t.ParticlesPerBlast = d.ParticlesPerBlast
	}

	posInt(&t.EndlessMaxBodies, d.EndlessMaxBodies)
	posInt(&t.LevelMaxBodies, d.LevelMaxBodies)
	nonNeg(&t.DangerLineOffset, d.DangerLineOffset)
	posInt(&t.EndlessPopulation, d.EndlessPopulation)
	return t
}

// SpawnPoint is where each new projectile appears.
func (t Tuning) SpawnPoint() (x, y float64) {
	return (t.Left + t.Right) / 2, t.Bottom - t.SpawnOffsetY
}

// Bounds returns the playfield as a bounding box. Screen y grows downward,
// so B holds the top edge and T the bottom edge.
func (t Tuning) Bounds() cp.BB {
	return cp.BB{L: t.Left, B: t.Top, R: t.Right, T: t.Bottom}
}

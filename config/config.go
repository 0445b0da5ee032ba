package config

import "time"

// Seconds is a designer-facing duration. YAML documents carry plain numbers.
type Seconds float64

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

// EnemyConfig contains the tunables of a single enemy agent. Agents copy it at
// spawn, so a reload only affects later spawns.
type EnemyConfig struct {
	// Combat
	Health int `yaml:"health"`
	Damage int `yaml:"damage"` // Contact damage dealt to the player
	Points int `yaml:"points"` // Score awarded on death

	// Attack
	AttackDistanceThreshold float64 `yaml:"attack_distance_threshold"` // Envelope depth beyond both footprints
	TimeBetweenAttacks      Seconds `yaml:"time_between_attacks"`
	AttackSpeed             float64 `yaml:"attack_speed"` // Lunge progress per second

	// Steering
	SteeringSpeed    float64 `yaml:"steering_speed"`    // Units per second
	StandoffDistance float64 `yaml:"standoff_distance"` // Extra gap kept from the target
	RefreshPeriod    Seconds `yaml:"refresh_period"`

	// Body
	CollisionRadius float64 `yaml:"collision_radius"`

	// Visual
	TintColor   [4]uint8 `yaml:"tint_color"`
	AttackColor [4]uint8 `yaml:"attack_color"`
}

// PlayerConfig contains the player's auto-fire weapon and body.
type PlayerConfig struct {
	Health          int     `yaml:"health"`
	CollisionRadius float64 `yaml:"collision_radius"`
	FireRange       float64 `yaml:"fire_range"`
	FireCooldown    Seconds `yaml:"fire_cooldown"`
	FireDamage      int     `yaml:"fire_damage"`
	InvulnTime      Seconds `yaml:"invuln_time"` // Grace period after a contact hit
}

// NavConfig sizes the pathfinding grid.
type NavConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// WaveConfig drives enemy spawning and the win condition.
type WaveConfig struct {
	FirstDelay    Seconds `yaml:"first_delay"`
	SpawnInterval Seconds `yaml:"spawn_interval"`
	PerWave       int     `yaml:"per_wave"`
	MaxAlive      int     `yaml:"max_alive"`
	WinScore      int     `yaml:"win_score"`
}

// EffectConfig contains death effect timings.
type EffectConfig struct {
	DeathEffectLifetime Seconds `yaml:"death_effect_lifetime"`
}

// SimConfig contains fixed-step simulation settings.
type SimConfig struct {
	TickRate int // Ticks per second
}

// Global configuration instances
var Enemy EnemyConfig
var Player PlayerConfig
var Nav NavConfig
var Wave WaveConfig
var Effect EffectConfig
var Sim SimConfig

// Shared RGBA colors
var (
	White    = [4]uint8{255, 255, 255, 255}
	Red      = [4]uint8{255, 0, 0, 255}
	LightRed = [4]uint8{255, 60, 60, 255}
	Purple   = [4]uint8{128, 0, 255, 255}
)

func init() {
	Apply(Defaults())
	Sim = SimConfig{TickRate: 60}
}

// Defaults returns the built-in designer values. World units are pixels, one
// tile is 16.
func Defaults() Designer {
	return Designer{
		Enemy: EnemyConfig{
			Health: 3,
			Damage: 1,
			Points: 1,

			AttackDistanceThreshold: 6.4,
			TimeBetweenAttacks:      1,
			AttackSpeed:             3,

			SteeringSpeed:    56,
			StandoffDistance: 0,
			RefreshPeriod:    0.2,

			CollisionRadius: 8,

			TintColor:   Purple,
			AttackColor: Red,
		},
		Player: PlayerConfig{
			Health:          10,
			CollisionRadius: 8,
			FireRange:       96,
			FireCooldown:    0.5,
			FireDamage:      1,
			InvulnTime:      0.5,
		},
		Nav: NavConfig{
			CellSize: 16,
		},
		Wave: WaveConfig{
			FirstDelay:    1,
			SpawnInterval: 4,
			PerWave:       3,
			MaxAlive:      12,
			WinScore:      30,
		},
		Effect: EffectConfig{
			DeathEffectLifetime: 0.5,
		},
	}
}

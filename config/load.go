package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Designer is the YAML document designers edit. Keys left out of a document
// keep their current value.
type Designer struct {
	Enemy  EnemyConfig  `yaml:"enemy"`
	Player PlayerConfig `yaml:"player"`
	Nav    NavConfig    `yaml:"nav"`
	Wave   WaveConfig   `yaml:"wave"`
	Effect EffectConfig `yaml:"effect"`
}

var ErrInvalid = errors.New("invalid designer config")

// Current snapshots the active global values.
func Current() Designer {
	return Designer{
		Enemy:  Enemy,
		Player: Player,
		Nav:    Nav,
		Wave:   Wave,
		Effect: Effect,
	}
}

// Apply replaces the active global values.
func Apply(d Designer) {
	Enemy = d.Enemy
	Player = d.Player
	Nav = d.Nav
	Wave = d.Wave
	Effect = d.Effect
}

// Parse overlays a YAML document onto the active values and validates the result.
// Globals are not touched.
func Parse(data []byte) (Designer, error) {
	d := Current()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Designer{}, fmt.Errorf("parse designer config: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Designer{}, err
	}
	return d, nil
}

// Load parses data and applies it.
func Load(data []byte) error {
	d, err := Parse(data)
	if err != nil {
		return err
	}
	Apply(d)
	return nil
}

// LoadFile reads a designer document from disk and applies it. On error the
// previous values stay active.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read designer config %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[config] loaded %s", path)
	return nil
}

func (d Designer) Validate() error {
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, field))
		}
	}

	e := d.Enemy
	check(e.Health > 0, "enemy.health must be positive")
	check(e.Damage >= 0, "enemy.damage must not be negative")
	check(e.Points >= 0, "enemy.points must not be negative")
	check(e.AttackDistanceThreshold >= 0, "enemy.attack_distance_threshold must not be negative")
	check(e.TimeBetweenAttacks >= 0, "enemy.time_between_attacks must not be negative")
	check(e.AttackSpeed > 0, "enemy.attack_speed must be positive")
	check(e.SteeringSpeed >= 0, "enemy.steering_speed must not be negative")
	check(e.StandoffDistance >= 0, "enemy.standoff_distance must not be negative")
	// The stand-off point has to sit inside the attack envelope.
	check(e.StandoffDistance < e.AttackDistanceThreshold/2, "enemy.standoff_distance must be below half the attack_distance_threshold")
	check(e.RefreshPeriod > 0, "enemy.refresh_period must be positive")
	check(e.CollisionRadius > 0, "enemy.collision_radius must be positive")

	p := d.Player
	check(p.Health > 0, "player.health must be positive")
	check(p.CollisionRadius > 0, "player.collision_radius must be positive")
	check(p.FireRange >= 0, "player.fire_range must not be negative")
	check(p.FireCooldown > 0, "player.fire_cooldown must be positive")
	check(p.InvulnTime >= 0, "player.invuln_time must not be negative")

	check(d.Nav.CellSize > 0, "nav.cell_size must be positive")

	w := d.Wave
	check(w.SpawnInterval > 0, "wave.spawn_interval must be positive")
	check(w.PerWave > 0, "wave.per_wave must be positive")
	check(w.MaxAlive > 0, "wave.max_alive must be positive")
	check(w.WinScore > 0, "wave.win_score must be positive")

	check(d.Effect.DeathEffectLifetime >= 0, "effect.death_effect_lifetime must not be negative")

	return errors.Join(errs...)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Sim     SimConfig     `toml:"sim"`
	Tuning  Tuning        `toml:"tuning"`
	Logging LoggingConfig `toml:"logging"`
	Paths   PathsConfig   `toml:"paths"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Scale  float64 `toml:"scale"` // world units -> screen pixels
}

type SimConfig struct {
	Seed     int64         `toml:"seed"` // 0 = seed from clock
	TickRate time.Duration `toml:"tick_rate"`
	MaxDelta time.Duration `toml:"max_delta"` // hosts clamp frame time to this
}

// Tuning holds every gameplay constant. Speeds are world units per second,
// accelerations are applied once per tick (not scaled by dt).
type Tuning struct {
	RotationSpeed        float64       `toml:"rotation_speed"`         // rad/s
	BoostAcceleration    float64       `toml:"boost_acceleration"`
	PassiveAcceleration  float64       `toml:"passive_acceleration"`
	MaxSpeed             float64       `toml:"max_speed"`
	Drag                 float64       `toml:"drag"`                   // per-tick multiplier, (0,1)
	BulletSpeed          float64       `toml:"bullet_speed"`
	BulletVelocityOffset float64       `toml:"bullet_velocity_offset"`
	BulletRadiusMin      float64       `toml:"bullet_radius_min"`
	BulletRadiusMax      float64       `toml:"bullet_radius_max"`
	BulletTTLMin         time.Duration `toml:"bullet_ttl_min"`
	BulletTTLMax         time.Duration `toml:"bullet_ttl_max"`
	ShotBatch            int           `toml:"shot_batch"`
	DeathBurst           int           `toml:"death_burst"`
	EnemyBurst           int           `toml:"enemy_burst"`
	HitRadius            float64       `toml:"hit_radius"`
	ShootCooldown        time.Duration `toml:"shoot_cooldown"`
	StartAmmunition      uint32        `toml:"start_ammunition"`
	MaxAmmunition        uint32        `toml:"max_ammunition"`
	PickupRadius         float64       `toml:"pickup_radius"`
	TargetRadius         float64       `toml:"target_radius"`
	TargetDistanceMin    float64       `toml:"target_distance_min"`
	TargetDistanceMax    float64       `toml:"target_distance_max"`
	EnemySpawnInterval   time.Duration `toml:"enemy_spawn_interval"`
	EnemySpawnDistance   float64       `toml:"enemy_spawn_distance"`
	EnemyHitRadius       float64       `toml:"enemy_hit_radius"`
	IndicatorDistance    float64       `toml:"indicator_distance"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PathsConfig struct {
	EnemyTable string `toml:"enemy_table"`
	ScriptsDir string `toml:"scripts_dir"`
}

// Load reads a TOML file over the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML bytes over the defaults. name is only used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

// Validate rejects tuning values that would break the motion or spawn rules.
func (t Tuning) Validate() error {
	var errs []error
	if t.Drag <= 0 || t.Drag >= 1 {
		errs = append(errs, fmt.Errorf("tuning.drag must be in (0,1), got %v", t.Drag))
	}
	if t.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("tuning.max_speed must be positive, got %v", t.MaxSpeed))
	}
	if t.ShootCooldown <= 0 {
		errs = append(errs, fmt.Errorf("tuning.shoot_cooldown must be positive, got %v", t.ShootCooldown))
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"hit_radius", t.HitRadius},
		{"pickup_radius", t.PickupRadius},
		{"target_radius", t.TargetRadius},
		{"enemy_hit_radius", t.EnemyHitRadius},
	} {
		if !(r.v > 0) {
			errs = append(errs, fmt.Errorf("tuning.%s must be positive, got %v", r.name, r.v))
		}
	}
	if t.BulletRadiusMax < t.BulletRadiusMin {
		errs = append(errs, errors.New("tuning.bullet_radius_max below bullet_radius_min"))
	}
	if t.BulletTTLMax < t.BulletTTLMin || t.BulletTTLMin <= 0 {
		errs = append(errs, errors.New("tuning.bullet_ttl range must be positive and ordered"))
	}
	if t.TargetDistanceMax < t.TargetDistanceMin {
		errs = append(errs, errors.New("tuning.target_distance_max below target_distance_min"))
	}
	if t.MaxAmmunition < t.StartAmmunition {
		errs = append(errs, errors.New("tuning.max_ammunition below start_ammunition"))
	}
	if t.ShotBatch < 0 || t.DeathBurst < 0 || t.EnemyBurst < 0 {
		errs = append(errs, errors.New("tuning batch sizes must not be negative"))
	}
	if t.EnemySpawnInterval <= 0 {
		errs = append(errs, errors.New("tuning.enemy_spawn_interval must be positive"))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Jerry Can",
			Width:  640,
			Height: 360,
			Scale:  2,
		},
		Sim: SimConfig{
			Seed:     0,
			TickRate: time.Second / 60,
			MaxDelta: 50 * time.Millisecond,
		},
		Tuning: DefaultTuning(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Paths: PathsConfig{
			EnemyTable: "data/yaml/enemy_list.yaml",
			ScriptsDir: "scripts",
		},
	}
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		RotationSpeed:        4.5,
		BoostAcceleration:    6,
		PassiveAcceleration:  0.2,
		MaxSpeed:             180,
		Drag:                 0.995,
		BulletSpeed:          220,
		BulletVelocityOffset: 40,
		BulletRadiusMin:      1.0,
		BulletRadiusMax:      2.5,
		BulletTTLMin:         50 * time.Millisecond,
		BulletTTLMax:         250 * time.Millisecond,
		ShotBatch:            10,
		DeathBurst:           45,
		EnemyBurst:           6,
		HitRadius:            7,
		ShootCooldown:        5 * time.Millisecond,
		StartAmmunition:      100,
		MaxAmmunition:        100,
		PickupRadius:         10,
		TargetRadius:         12,
		TargetDistanceMin:    150,
		TargetDistanceMax:    400,
		EnemySpawnInterval:   2 * time.Second,
		EnemySpawnDistance:   220,
		EnemyHitRadius:       6,
		IndicatorDistance:    40,
	}
}

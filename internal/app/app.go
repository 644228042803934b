// Package app holds the startup sequence shared by the hosts: config,
// logger, hostile table and rules engine.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/game"
	"github.com/fuelrun/jerrycan/internal/scripting"
	"github.com/fuelrun/jerrycan/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConfigPath is used when JERRYCAN_CONFIG is unset.
const DefaultConfigPath = "config/jerrycan.toml"

// Runtime is everything a host needs to build a game.
type Runtime struct {
	Config  *config.Config
	Log     *zap.Logger
	Enemies *data.EnemyTable
	Rules   *scripting.Engine
}

// ConfigPath resolves the config file: explicit flag, then env, then default.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("JERRYCAN_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Boot loads configuration and data. A missing config file at the default
// path falls back to built-in defaults; any other failure is returned.
func Boot(cfgPath string) (*Runtime, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if cfgPath != DefaultConfigPath || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}

	log, err := NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	enemies, err := data.LoadEnemyTable(cfg.Paths.EnemyTable)
	if err != nil {
		log.Warn("hostile table unavailable, using built-in kind", zap.Error(err))
		enemies = nil
	} else {
		log.Info("hostile table loaded", zap.Int("kinds", enemies.Count()))
	}

	rules, err := scripting.NewEngine(cfg.Paths.ScriptsDir, system.DefaultRules{}, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("scripting: %w", err)
	}
	for _, hook := range []string{"on_pickup", "on_target", "enemy_spawn_interval"} {
		if !rules.HasHook(hook) {
			log.Debug("lua hook missing, using default rule", zap.String("hook", hook))
		}
	}

	return &Runtime{Config: cfg, Log: log, Enemies: enemies, Rules: rules}, nil
}

// NewGame builds a game from the runtime. seed 0 uses the configured seed.
func (r *Runtime) NewGame(seed int64) *game.Game {
	if seed == 0 {
		seed = r.Config.Sim.Seed
	}
	return game.New(game.Deps{
		Tuning:     r.Config.Tuning,
		EnemyKinds: r.Enemies,
		Rules:      r.Rules,
		Seed:       seed,
		Log:        r.Log,
	})
}

// Close releases the Lua VM and flushes the logger.
func (r *Runtime) Close() {
	r.Rules.Close()
	_ = r.Log.Sync()
}

// NewLogger builds the process logger from the [logging] section.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

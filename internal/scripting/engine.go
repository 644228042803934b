package scripting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Fallback supplies the built-in rule for every hook a script leaves out
// or breaks. system.DefaultRules satisfies it.
type Fallback interface {
	PickupAmmo(current, max uint32) uint32
	TargetScore(score uint32) uint32
	EnemySpawnInterval(score uint32, base time.Duration) time.Duration
}

// Engine wraps a single gopher-lua VM for gameplay rules.
// Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	fallback Fallback
	log      *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
// A missing directory is not an error; every hook then uses the fallback.
func NewEngine(scriptsDir string, fallback Fallback, log *zap.Logger) (*Engine, error) {
	e := newEngine(fallback, log)

	// core first, then the optional feature directories
	for _, sub := range []string{"core", "pickup", "score", "spawn"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			e.vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

// NewEngineFromSource builds an engine from one in-memory chunk.
func NewEngineFromSource(src string, fallback Fallback, log *zap.Logger) (*Engine, error) {
	e := newEngine(fallback, log)
	if err := e.vm.DoString(src); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return e, nil
}

func newEngine(fallback Fallback, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, fallback: fallback, log: log}
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasHook reports whether the scripts define a global function name.
func (e *Engine) HasHook(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// call invokes a global Lua function with one table argument and returns its
// single numeric result. ok is false when the hook is absent or misbehaves;
// failures are logged, never propagated into the tick.
func (e *Engine) call(name string, fill func(t *lua.LTable)) (float64, bool) {
	fn, isFn := e.vm.GetGlobal(name).(*lua.LFunction)
	if !isFn {
		return 0, false
	}
	t := e.vm.NewTable()
	fill(t)

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua hook error", zap.String("hook", name), zap.Error(err))
		return 0, false
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)

	n, isNum := ret.(lua.LNumber)
	if !isNum {
		e.log.Warn("lua hook returned non-number",
			zap.String("hook", name),
			zap.String("type", ret.Type().String()),
		)
		return 0, false
	}
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.log.Warn("lua hook returned non-finite number", zap.String("hook", name))
		return 0, false
	}
	return v, true
}

// PickupAmmo calls on_pickup({ammo, max_ammo}). The result is clamped to
// [0, max]. Without a usable hook the fallback rule applies.
func (e *Engine) PickupAmmo(current, max uint32) uint32 {
	v, ok := e.call("on_pickup", func(t *lua.LTable) {
		t.RawSetString("ammo", lua.LNumber(current))
		t.RawSetString("max_ammo", lua.LNumber(max))
	})
	if !ok {
		return e.fallback.PickupAmmo(current, max)
	}
	switch {
	case v <= 0:
		return 0
	case v >= float64(max):
		return max
	}
	return uint32(v)
}

// TargetScore calls on_target({score}) for the points a touch is worth.
// Negative results count as zero.
func (e *Engine) TargetScore(score uint32) uint32 {
	v, ok := e.call("on_target", func(t *lua.LTable) {
		t.RawSetString("score", lua.LNumber(score))
	})
	if !ok {
		return e.fallback.TargetScore(score)
	}
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint16 {
		v = math.MaxUint16
	}
	return uint32(v)
}

// Spawn intervals a script may ask for.
const (
	minSpawnInterval = time.Millisecond
	maxSpawnInterval = time.Hour
)

// EnemySpawnInterval calls enemy_spawn_interval({score, base}) with base in
// seconds and expects seconds back. Non-positive results use the fallback;
// the rest are clamped to [1ms, 1h].
func (e *Engine) EnemySpawnInterval(score uint32, base time.Duration) time.Duration {
	v, ok := e.call("enemy_spawn_interval", func(t *lua.LTable) {
		t.RawSetString("score", lua.LNumber(score))
		t.RawSetString("base", lua.LNumber(base.Seconds()))
	})
	if !ok || v <= 0 {
		return e.fallback.EnemySpawnInterval(score, base)
	}
	switch {
	case v < minSpawnInterval.Seconds():
		return minSpawnInterval
	case v > maxSpawnInterval.Seconds():
		return maxSpawnInterval
	}
	return time.Duration(v * float64(time.Second))
}

func (e *Engine) Close() {
	e.vm.Close()
}

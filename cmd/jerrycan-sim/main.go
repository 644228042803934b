// Command jerrycan-sim runs the simulation without a window, driven by a
// recorded input script, and reports where the run ended up.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fuelrun/jerrycan/internal/app"
	"github.com/fuelrun/jerrycan/internal/core/event"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/system"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "config file (default $JERRYCAN_CONFIG or "+app.DefaultConfigPath+")")
	replayPath := flag.String("replay", "data/yaml/replay_demo.yaml", "input script to play back")
	seed := flag.Int64("seed", 0, "rng seed, 0 uses the replay's seed")
	flag.Parse()

	rt, err := app.Boot(app.ConfigPath(*cfgPath))
	if err != nil {
		return err
	}
	defer rt.Close()
	log := rt.Log

	replay, err := data.LoadReplay(*replayPath)
	if err != nil {
		return err
	}
	if *seed == 0 {
		*seed = replay.Seed
	}

	g := rt.NewGame(*seed)
	var shots, kills, pickups, targets int
	bus := g.World().Bus
	event.Subscribe(bus, func(event.ShotFired) { shots++ })
	event.Subscribe(bus, func(event.PlayerKilled) { kills++ })
	event.Subscribe(bus, func(event.PickupCollected) { pickups++ })
	event.Subscribe(bus, func(event.TargetTouched) { targets++ })

	steps := replay.Steps()
	log.Info("replay starting",
		zap.String("name", replay.Name),
		zap.Int("ticks", len(steps)),
		zap.Int64("seed", *seed),
	)

	start := time.Now()
	var simulated time.Duration
	for _, s := range steps {
		g.Step(s.DT, s.Input)
		simulated += s.DT
	}
	// deliver the last tick's events
	bus.SwapBuffers()
	bus.DispatchAll()

	ws := g.World()
	c := ws.Counts()
	fields := []zap.Field{
		zap.Uint64("ticks", ws.Tick),
		zap.Duration("simulated", simulated),
		zap.Duration("wall", time.Since(start)),
		zap.Uint32("score", g.Score()),
		zap.Int("shots", shots),
		zap.Int("deaths", kills),
		zap.Int("pickups", pickups),
		zap.Int("targets", targets),
		zap.Int("hostiles", c.Enemies),
		zap.Int("projectiles", c.Bullets),
		zap.Int("jerry_cans", c.JerryCans),
	}
	if p, ok := ws.Player(); ok {
		fields = append(fields,
			zap.Uint32("ammo", p.Stats.Ammunition),
			zap.Stringer("weapon", system.WeaponStateOf(p.Stats)),
			zap.Float64("x", p.Transform.Pos.X),
			zap.Float64("y", p.Transform.Pos.Y),
		)
	}
	log.Info("replay finished", fields...)

	pr := message.NewPrinter(language.English)
	pr.Printf("%s: %d ticks, score %d, %d shots, %d deaths, %d live entities\n",
		replay.Name, ws.Tick, g.Score(), shots, kills, ws.ECS.Len())
	return nil
}

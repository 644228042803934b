package main

import (
	"image/color"
	"math"
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/core/event"
	"github.com/fuelrun/jerrycan/internal/game"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/input"
	"github.com/fuelrun/jerrycan/internal/system"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var bindings = map[input.Action][]ebiten.Key{
	input.TurnLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.TurnRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Boost:     {ebiten.KeyW, ebiten.KeyArrowUp},
	input.Fire:      {ebiten.KeyK, ebiten.KeySpace, ebiten.KeyX, ebiten.KeyShiftRight},
	input.Reset:     {ebiten.KeyR},
}

var (
	colorPlayer    = color.RGBA{0xf2, 0xe8, 0xcf, 0xff}
	colorEnemy     = color.RGBA{0xd6, 0x28, 0x28, 0xff}
	colorTarget    = color.RGBA{0x4c, 0xc9, 0xf0, 0xff}
	colorCan       = color.RGBA{0x38, 0xb0, 0x00, 0xff}
	colorIndicator = color.RGBA{0x38, 0xb0, 0x00, 0x90}
	colorBackdrop  = color.RGBA{0x10, 0x12, 0x18, 0xff}

	bulletPalette = map[component.BulletColor]color.RGBA{
		component.BulletEmber: {0xe8, 0x5d, 0x04, 0xff},
		component.BulletFlame: {0xfa, 0xa3, 0x07, 0xff},
		component.BulletSpark: {0xff, 0xea, 0x00, 0xff},
		component.BulletSmoke: {0x6c, 0x75, 0x7d, 0xc0},
	}
)

// keyboard polls ebiten's key state into a snapshot.
type keyboard struct{}

func (keyboard) Poll() input.Snapshot {
	var s input.Snapshot
	for a, keys := range bindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				s.Press(a)
			} else if ebiten.IsKeyPressed(k) {
				s.Hold(a)
			}
		}
	}
	return s
}

// host adapts a game.Game to ebiten.Game. The camera follows the player.
type host struct {
	game     *game.Game
	src      input.Source
	window   config.WindowConfig
	maxDelta time.Duration
	last     time.Time
	camera   geom.Vec2
	printer  *message.Printer
	deaths   int
}

func newHost(g *game.Game, cfg *config.Config) *host {
	h := &host{
		game:     g,
		src:      keyboard{},
		window:   cfg.Window,
		maxDelta: cfg.Sim.MaxDelta,
		printer:  message.NewPrinter(language.English),
	}
	event.Subscribe(g.World().Bus, func(event.PlayerKilled) { h.deaths++ })
	return h
}

func (h *host) Update() error {
	now := time.Now()
	if h.last.IsZero() {
		h.last = now
	}
	dt := now.Sub(h.last)
	if dt > h.maxDelta {
		dt = h.maxDelta
	}
	h.last = now

	h.game.Step(dt, h.src.Poll())
	if p, ok := h.game.World().Player(); ok {
		h.camera = p.Transform.Pos
	}
	return nil
}

func (h *host) Layout(_, _ int) (int, int) {
	return h.window.Width, h.window.Height
}

// toScreen maps world coordinates (y up) to screen pixels around the camera.
func (h *host) toScreen(p geom.Vec2) (float32, float32) {
	x := float64(h.window.Width)/2 + (p.X - h.camera.X)
	y := float64(h.window.Height)/2 - (p.Y - h.camera.Y)
	return float32(x), float32(y)
}

func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	ws := h.game.World()

	ecs.Each2(ws.Targets, ws.Transforms, func(_ ecs.EntityID, t *component.Target, tr *component.Transform) {
		x, y := h.toScreen(tr.Pos)
		vector.StrokeCircle(screen, x, y, float32(t.Radius), 1.5, colorTarget, true)
	})
	ecs.Each2(ws.JerryCans, ws.Transforms, func(_ ecs.EntityID, _ *component.JerryCan, tr *component.Transform) {
		x, y := h.toScreen(tr.Pos)
		vector.DrawFilledRect(screen, x-3, y-4, 6, 8, colorCan, false)
	})
	ecs.Each2(ws.Bullets, ws.Transforms, func(_ ecs.EntityID, b *component.Bullet, tr *component.Transform) {
		x, y := h.toScreen(tr.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), bulletPalette[b.Color], true)
	})
	ecs.Each2(ws.Enemies, ws.Transforms, func(_ ecs.EntityID, _ *component.Enemy, tr *component.Transform) {
		x, y := h.toScreen(tr.Pos)
		vector.DrawFilledCircle(screen, x, y, 5, colorEnemy, true)
	})
	if p, ok := ws.Player(); ok {
		h.drawShip(screen, *p.Transform)
	}
	ecs.Each2(ws.Indicators, ws.Transforms, func(_ ecs.EntityID, _ *component.UIJerryCan, tr *component.Transform) {
		x, y := h.toScreen(tr.Pos)
		vector.DrawFilledCircle(screen, x, y, 2, colorIndicator, true)
	})

	ebitenutil.DebugPrint(screen, h.hud())
	if _, ok := ws.Player(); !ok {
		h.drawBanner(screen, "JERRY CAN LOST - PRESS R")
	}
}

func (h *host) drawBanner(screen *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, msg).Round()
	x := (h.window.Width - w) / 2
	y := h.window.Height / 3
	text.Draw(screen, msg, face, x, y, colorEnemy)
}

func (h *host) drawShip(screen *ebiten.Image, tr component.Transform) {
	nose := tr.Pos.Add(geom.FromAngle(tr.Rotation).Scale(8))
	left := tr.Pos.Add(geom.FromAngle(tr.Rotation + 2.5).Scale(5))
	right := tr.Pos.Add(geom.FromAngle(tr.Rotation - 2.5).Scale(5))
	nx, ny := h.toScreen(nose)
	lx, ly := h.toScreen(left)
	rx, ry := h.toScreen(right)
	vector.StrokeLine(screen, nx, ny, lx, ly, 1.5, colorPlayer, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 1.5, colorPlayer, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 1.5, colorPlayer, true)
}

func (h *host) hud() string {
	ws := h.game.World()
	p, ok := ws.Player()
	if !ok {
		return h.printer.Sprintf("deaths %d  tick %d", h.deaths, ws.Tick)
	}
	speed := p.Velocity.V.Len()
	return h.printer.Sprintf("score %d  ammo %d/%d  %s\nspeed %.1f  heading %.0f°  tick %d",
		p.Stats.Score,
		p.Stats.Ammunition, ws.Tuning.MaxAmmunition,
		system.WeaponStateOf(p.Stats),
		speed,
		p.Transform.Rotation*180/math.Pi,
		ws.Tick,
	)
}

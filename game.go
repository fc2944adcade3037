package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bubbleblast/common"
	"github.com/milk9111/bubbleblast/config"
	"github.com/milk9111/bubbleblast/ecs"
	"github.com/milk9111/bubbleblast/ecs/system"
	"github.com/milk9111/bubbleblast/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg       *config.Config
	sim       *system.Simulation
	palette   Palette
	particles *Particles
	watcher   *prefabs.Watcher

	snapshot ecs.Snapshot
	debug    bool

	paused           bool
	restartRequested bool
	status           string

	pauseUI     *ebitenui.UI
	endUI       *ebitenui.UI
	endFor      ecs.State
	clipboardOK bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	levels, err := prefabs.LoadLevels()
	if err != nil {
		return nil, err
	}
	palette, err := loadPalette()
	if err != nil {
		return nil, err
	}
	if len(palette) < tuning.Colors {
		log.Printf("[palette] %d colors for %d body colors, some will repeat", len(palette), tuning.Colors)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := system.NewSimulation(tuning, cfg.Mode, levels, rand.New(rand.NewSource(seed)))
	if cfg.Level > 0 {
		sim.World.SetLevel(cfg.Level)
		sim.Reset()
	}

	g := &Game{
		cfg:       cfg,
		sim:       sim,
		palette:   palette,
		particles: NewParticles(rand.New(rand.NewSource(seed + 1))),
		debug:     cfg.Debug,
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(cfg.PrefabDir)
		if err != nil {
			log.Printf("[prefabs] watch %s disabled: %v", cfg.PrefabDir, err)
		} else {
			g.watcher = w
		}
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("[clipboard] unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.snapshot = sim.Snapshot()
	return g, nil
}

func loadPalette() (Palette, error) {
	spec, err := prefabs.LoadPalette()
	if err != nil {
		return nil, err
	}
	return NewPalette(spec.Colors)
}

func (g *Game) Update() error {
	g.reload()

	snap := g.snapshot
	ctl := SampleControls(snap.SpawnPoint, g.sim.World.Tuning.MaxAimDistance)
	if ctl.Debug {
		g.debug = !g.debug
	}
	if ctl.Pause && !snap.State.Terminal() {
		g.paused = !g.paused
	}
	g.particles.Update()

	if g.paused {
		g.pauseUI.Update()
		if !g.restartRequested {
			return nil
		}
	}
	if snap.State.Terminal() {
		g.endOverlay(snap).Update()
	}

	in := ctl.Input()
	if g.restartRequested {
		in.Restart = true
		g.restartRequested = false
	}
	if in.Restart {
		// The click that pressed a button must not also launch.
		in.Trigger = false
		g.particles.Clear()
		g.status = ""
		g.endUI = nil
	}

	g.sim.Step(in)
	for _, ev := range g.sim.World.Events().Drain() {
		g.particles.Emit(ev, g.explosionColor(ev))
	}
	g.snapshot = g.sim.Snapshot()
	return nil
}

func (g *Game) endOverlay(snap ecs.Snapshot) *ebitenui.UI {
	if g.endUI == nil || g.endFor != snap.State {
		g.endUI = NewEndUI(g, snap)
		g.endFor = snap.State
	}
	return g.endUI
}

// reload applies prefab edits between frames.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Drain() {
		switch c.Kind {
		case prefabs.ChangeTuning:
			t, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("[prefabs] reload %s: %v", c.Path, err)
				continue
			}
			g.sim.SetTuning(t)
		case prefabs.ChangeLevels:
			levels, err := prefabs.LoadLevels()
			if err != nil {
				log.Printf("[prefabs] reload %s: %v", c.Path, err)
				continue
			}
			g.sim.SetLevels(levels)
		case prefabs.ChangePalette:
			p, err := loadPalette()
			if err != nil {
				log.Printf("[prefabs] reload %s: %v", c.Path, err)
				continue
			}
			g.palette = p
		case prefabs.ChangeScript:
			g.sim.Spawner.Forget()
		}
		log.Printf("[prefabs] reloaded %s from %s", c.Kind, c.Path)
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("[prefabs] watch: %v", err)
	default:
	}
}

func (g *Game) copyScore() {
	if !g.clipboardOK {
		g.status = "Clipboard unavailable"
		g.endUI = nil
		return
	}
	snap := g.snapshot
	text := fmt.Sprintf("bubbleblast %s: %d points", snap.Mode, snap.Score)
	if snap.Mode == ecs.ModeLevels {
		text = fmt.Sprintf("bubbleblast levels (%d/%d): %d points", snap.LevelIndex+1, snap.LevelCount, snap.Score)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.status = "Score copied"
	g.endUI = nil
}

func (g *Game) explosionColor(ev ecs.Explosion) color.RGBA {
	switch ev.Kind {
	case ecs.KindBomb:
		return colornames.Orange
	case ecs.KindUniversal:
		return colornames.White
	}
	return g.palette.Color(ev.Color)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.snapshot, g.palette, g.debug)
	g.particles.Draw(screen)
	drawHUD(screen, g.snapshot, g.debug)

	if g.paused {
		g.pauseUI.Draw(screen)
	} else if g.snapshot.State.Terminal() && g.endUI != nil {
		g.endUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-beastfight/internal/app"
	"go-beastfight/internal/assets"
	"go-beastfight/internal/config"
	"go-beastfight/internal/debugsrv"
	"go-beastfight/internal/render"
	"go-beastfight/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var flags app.LaunchFlags
	flag.StringVar(&flags.ConfigPath, "config", "", "match settings YAML file")
	flag.StringVar(&flags.Mode, "mode", string(config.ModeSkirmish), "preset when no -config is given: duel, skirmish or custom")
	flag.Int64Var(&flags.Seed, "seed", 0, "random seed (0 = time based)")
	flag.StringVar(&flags.RosterPath, "roster", "", "unit definitions YAML file (embedded roster by default)")
	flag.StringVar(&flags.AssetDir, "assets", "", "directory with sprites")
	flag.StringVar(&flags.DebugAddr, "debug", "", "debug server address, \"off\" disables it")
	flag.Parse()

	settings, err := app.ResolveSettings(flags)
	if err != nil {
		log.Fatalf("failed to resolve settings: %v", err)
	}
	catalog, err := app.ResolveCatalog(settings)
	if err != nil {
		log.Fatalf("failed to load unit catalog: %v", err)
	}

	images := assets.NewManager(settings.AssetDir, render.Loader, log.Default())
	defer images.Cleanup()

	game, err := app.NewGame(app.Options{
		Settings: settings,
		Catalog:  catalog,
		Images:   images,
		Logger:   log.Default(),
	})
	if err != nil {
		log.Fatalf("failed to start match: %v", err)
	}
	if failed := images.Failed(); len(failed) > 0 {
		log.Printf("Running without %d sprite(s)", len(failed))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if settings.DebugAddr != "off" {
		srv := debugsrv.New(game, log.Default())
		go func() {
			if err := srv.ListenAndServe(ctx, settings.DebugAddr); err != nil {
				log.Println(err)
			}
		}()
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewBattleState(sm, game))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Beastfight")
	ebiten.SetTPS(config.TargetTPS)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}

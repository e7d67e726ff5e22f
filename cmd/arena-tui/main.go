// cmd/arena-tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"go-beastfight/internal/app"
	"go-beastfight/internal/config"
	"go-beastfight/internal/debugsrv"
	"go-beastfight/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	var flags app.LaunchFlags
	flag.StringVar(&flags.ConfigPath, "config", "", "match settings YAML file")
	flag.StringVar(&flags.Mode, "mode", string(config.ModeSkirmish), "preset when no -config is given: duel, skirmish or custom")
	flag.Int64Var(&flags.Seed, "seed", 0, "random seed (0 = time based)")
	flag.StringVar(&flags.RosterPath, "roster", "", "unit definitions YAML file (embedded roster by default)")
	flag.StringVar(&flags.DebugAddr, "debug", "off", "debug server address, \"off\" disables it")
	logPath := flag.String("log", "", "write the combat log to this file")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	// Лог в терминал сломает картинку, поэтому пишем в файл или никуда.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	settings, err := app.ResolveSettings(flags)
	if err != nil {
		log.Fatalf("failed to resolve settings: %v", err)
	}
	catalog, err := app.ResolveCatalog(settings)
	if err != nil {
		log.Fatalf("failed to load unit catalog: %v", err)
	}
	// Спрайты терминалу не нужны.
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Catalog:  catalog,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("failed to start match: %v", err)
	}

	if !*mute {
		cues := tui.NewCues(logger)
		if err := cues.Initialize(); err != nil {
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Cleanup()
			cues.Subscribe(game.EventDispatcher)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if settings.DebugAddr != "off" {
		srv := debugsrv.New(game, logger)
		go func() {
			if err := srv.ListenAndServe(ctx, settings.DebugAddr); err != nil {
				logger.Println(err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}

	runErr := tui.NewSpectator(screen, game, logger).Run(ctx)
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatal(runErr)
	}
}

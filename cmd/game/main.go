package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gravityshift/internal/application/game"
	"github.com/younwookim/gravityshift/internal/application/replay"
	"github.com/younwookim/gravityshift/internal/application/scene"
	"github.com/younwookim/gravityshift/internal/application/scene/menu"
	"github.com/younwookim/gravityshift/internal/application/scene/playing"
	"github.com/younwookim/gravityshift/internal/application/system"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	levelFlag := flag.Int("level", -1, "Start directly on this level index (default: level select)")
	configFlag := flag.String("config", "", "Load tuning.toml and levels/ from this directory instead of the embedded set")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, .mpk for msgpack)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Bool("headless", false, "With -replay: simulate without a window and print a summary")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	tuning := loadTuning(loader)
	catalog := loadCatalog(loader)

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}

		if *headlessFlag {
			result, err := RunReplay(catalog, tuning, data)
			if err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			log.Printf("Replay %s: %s", *replayFlag, result)
			return
		}

		p, err := playing.New(catalog, data.Level, tuning, playing.Options{
			Input: newReplayInput(replay.NewReplayer(*data)),
		})
		if err != nil {
			log.Fatalf("Failed to start replay: %v", err)
		}
		run(p, tuning)
		return
	}

	var first scene.Scene
	menuOpts := menu.Options{RecordPath: *recordFlag}
	if *levelFlag >= 0 {
		m := menu.New(catalog, tuning, menuOpts)
		p, err := playing.New(catalog, *levelFlag, tuning, playing.Options{
			RecordPath: *recordFlag,
			Menu:       func() scene.Scene { return m },
		})
		if err != nil {
			log.Printf("Failed to start level %d: %v", *levelFlag, err)
			first = m
		} else {
			m.Select(*levelFlag)
			first = p
		}
	} else {
		first = menu.New(catalog, tuning, menuOpts)
	}

	run(first, tuning)
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadTuning falls back to the built-in values when tuning.toml is unusable
func loadTuning(loader *config.Loader) *config.Tuning {
	tuning, err := loader.LoadTuning()
	if err != nil {
		log.Printf("Using default tuning: %v", err)
		t := config.DefaultTuning()
		return &t
	}
	return tuning
}

// loadCatalog appends the level files after the built-in levels
func loadCatalog(loader *config.Loader) *level.Catalog {
	catalog := level.DefaultCatalog()

	cfgs, err := loader.LoadLevels()
	if err != nil {
		log.Printf("Skipping level files: %v", err)
		return catalog
	}
	extra, err := system.LevelsFromConfig(cfgs)
	if err != nil {
		log.Printf("Skipping level files: %v", err)
		return catalog
	}
	catalog.Append(extra...)
	return catalog
}

func run(first scene.Scene, tuning *config.Tuning) {
	d := tuning.Display
	g := game.New(first, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Gravity Shift")
	ebiten.SetTPS(d.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

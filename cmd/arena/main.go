// cmd/arena/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"elemental-arena/internal/app"
	"elemental-arena/internal/audio"
	"elemental-arena/internal/config"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/event"
	"elemental-arena/internal/feed"
	"elemental-arena/internal/state"
)

const startFromMenu = true // false — сразу на арену

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
	arenaPath := flag.String("arena", "assets/data/arena.json", "arena definition file, empty for the built-in arena")
	feedAddr := flag.String("feed", "", "spectator websocket address, e.g. :8090")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	var arena *defs.ArenaDefinition
	if *arenaPath != "" {
		var err error
		arena, err = defs.LoadArena(*arenaPath)
		if err != nil {
			log.Fatalf("failed to load arena: %v", err)
		}
	}

	dispatcher := event.NewDispatcher()
	game := app.NewGame(arena, dispatcher)

	cues := audio.NewCuePlayer(ebitenaudio.NewContext(config.AudioSampleRate), *mute)
	cues.Subscribe(dispatcher)

	if *feedAddr != "" {
		hub := feed.NewHub(game)
		hub.Subscribe(dispatcher)

		mux := http.NewServeMux()
		mux.Handle("/feed", hub)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
		srv := &http.Server{
			Addr:        *feedAddr,
			Handler:     mux,
			ReadTimeout: 15 * time.Second,
			IdleTimeout: 60 * time.Second,
		}
		go func() {
			log.Println("feed listening on", *feedAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("feed server stopped: %v", err)
			}
		}()
	}

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, game))
	} else {
		sm.SetState(state.NewGameState(sm, game))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Elemental Arena")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

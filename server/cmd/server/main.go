package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/wavebreak/server/core"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 20, "Server tick rate (updates per second)")
	name := flag.String("name", "Wavebreak Server", "Server display name")
	tuning := flag.String("tuning", "", "YAML tuning overlay (empty = built-in defaults)")
	assets := flag.String("assets", "", "Assets directory holding arenas/*.tmx (empty = open arena)")
	arenaName := flag.String("arena", "", "Arena to run (empty = first one found)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	records := flag.Bool("records", true, "Persist best-run records")
	flag.Parse()

	if *tuning != "" {
		if err := core.LoadTuningFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	var arena *leveldata.ArenaData
	if *assets != "" {
		arenas, names, err := core.LoadArenas(*assets)
		if err != nil {
			log.Fatalf("Failed to load arenas: %v", err)
		}
		arena, err = core.SelectArena(arenas, names, *arenaName)
		if err != nil {
			log.Fatalf("Failed to select arena: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var store *core.RecordStore
	if *records {
		s, err := core.OpenRecords("wavebreak")
		if err != nil {
			log.Printf("Warning: Could not open records: %v", err)
		} else {
			store = s
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate: *tickRate,
		Name:     *name,
		Arena:    arena,
		Seed:     *seed,
		Records:  store,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Wavebreak server %q on port %d (tick rate: %d/s, seed: %d)",
		*name, *port, *tickRate, *seed)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/wavebreak/network"
	"github.com/automoto/wavebreak/shared/protocol"
	dmath "github.com/yohamta/donburi/features/math"
)

func main() {
	addr := flag.String("addr", "localhost:7373", "Server address")
	rate := flag.Int("rate", 20, "Input messages per second")
	spectate := flag.Bool("spectate", false, "Only watch; never send input")
	duration := flag.Duration("duration", 0, "Disconnect after this long (0 = run until interrupted)")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr)
	defer client.Disconnect()

	mirror := network.NewMirror()
	pilot := network.NewAutopilot()
	dt := 1 / float64(*rate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	var local dmath.Vec2
	lastWave := 0
	for {
		select {
		case <-sigChan:
			log.Println("[client] interrupted")
			return
		case <-deadline:
			log.Println("[client] duration elapsed")
			return
		case <-report.C:
			if wave, ok := mirror.Wave(); ok {
				log.Printf("[client] wave %d (%s) live=%d coins=%d kills=%d level=%d",
					wave.Wave, wave.Phase, wave.Live, wave.Coins, wave.Kills, wave.Level)
			} else {
				log.Printf("[client] %s, waiting for state", client.State())
			}
		case <-ticker.C:
			if err := client.LastError(); err != nil {
				log.Fatalf("[client] %v", err)
			}
			if snap := client.LatestSnapshot(); snap != nil {
				mirror.Apply(*snap)
			}

			player, ok := mirror.Player()
			if wave, hasWave := mirror.Wave(); hasWave && wave.Wave != lastWave {
				lastWave = wave.Wave
				log.Printf("[client] wave %d started", wave.Wave)
			}
			if *spectate || !ok {
				continue
			}

			server := dmath.Vec2{X: player.X, Y: player.Y}
			var drift float64
			local, drift = client.Reconcile(server, player.LastSequence, dt)
			if drift > 1 {
				log.Printf("[client] prediction drifted %.2f at seq %d", drift, player.LastSequence)
			}

			actions, aim := pilot.Decide(player, mirror.Enemies(), dt)
			input := client.NextInput(actions, aim, local, dt)
			if err := client.SendMessage(input); err != nil {
				log.Printf("[client] send input: %v", err)
			}
		}
	}
}

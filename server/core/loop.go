package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
	stopped  bool
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Delta is the fixed simulation step in seconds.
func (g *GameLoop) Delta() float64 {
	return 1 / float64(g.tickRate)
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[server] Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	if g.stopped {
		return
	}
	g.stopped = true
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.step(g.Delta())

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] Sync error: %v", err)
	}
}

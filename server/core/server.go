package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/scenes"
	"github.com/automoto/wavebreak/shared/leveldata"
	"github.com/automoto/wavebreak/shared/messages"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Options configures a game server.
type Options struct {
	TickRate int
	Name     string
	// Arena is the loaded map. Nil runs the open arena.
	Arena *leveldata.ArenaData
	Seed  int64
	// Records persists best runs. Nil disables persistence.
	Records *RecordStore
}

// Server hosts one arena run. The first connected client pilots the player;
// everyone else spectates through replication.
type Server struct {
	name      string
	arenaName string
	arena     *scenes.Arena
	loop      *GameLoop
	transport *transports.WsServerTransport
	repl      *replicator
	records   *RecordStore

	// Connection order; clients[0] is the pilot
	clients    []*router.NetworkClient
	pending    []messages.PlayerInput
	lastSeq    uint32
	resetInput bool
	mu         sync.Mutex

	// Guards the simulation between the loop goroutine and Stop
	simMu    sync.Mutex
	lastWave int
}

// NewServer creates a game server replicating through necs.
func NewServer(opts Options) (*Server, error) {
	s, err := newServer(opts, true)
	if err != nil {
		return nil, err
	}

	// Set up the world for esync
	srvsync.UseEsync(s.arena.World())

	// Register router callbacks
	s.setupRouterCallbacks()

	return s, nil
}

func newServer(opts Options, synced bool) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", opts.TickRate)
	}

	arena, err := scenes.NewArena(scenes.ArenaOptions{
		Level: opts.Arena,
		Seed:  opts.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("create arena: %w", err)
	}

	arenaName := "open"
	if opts.Arena != nil {
		arenaName = opts.Arena.Name
	}

	s := &Server{
		name:      opts.Name,
		arenaName: arenaName,
		arena:     arena,
		records:   opts.Records,
		repl:      &replicator{world: arena.World(), synced: synced},
		lastWave:  arena.Summary().Wave,
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server and counts the run in the records.
func (s *Server) Stop() {
	s.loop.Stop()

	s.simMu.Lock()
	defer s.simMu.Unlock()
	if s.records == nil {
		return
	}
	sum := s.arena.Summary()
	if _, err := s.records.Observe(s.arenaName, sum.Wave, sum.Kills, sum.Level); err != nil {
		log.Printf("[server] Warning: Could not save records: %v", err)
	}
	if err := s.records.FinishRun(s.arenaName); err != nil {
		log.Printf("[server] Warning: Could not save records: %v", err)
	}
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.queueInput(client, input)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	if s.join(client) {
		log.Printf("[server] Client %s connected and pilots the player", client.Id())
	} else {
		log.Printf("[server] Client %s connected as spectator", client.Id())
	}
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] Client %s disconnected", client.Id())
	}

	if next := s.leave(client); next != nil {
		log.Printf("[server] Client %s now pilots the player", next.Id())
	}
}

// join registers a client and reports whether it became the pilot.
func (s *Server) join(client *router.NetworkClient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c == client {
			return c == s.clients[0]
		}
	}
	s.clients = append(s.clients, client)
	return len(s.clients) == 1
}

// leave drops a client. When the pilot leaves, queued input is discarded
// and the returned client takes over.
func (s *Server) leave(client *router.NetworkClient) *router.NetworkClient {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.clients {
		if c == client {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	if idx != 0 {
		return nil
	}

	s.pending = nil
	s.lastSeq = 0
	s.resetInput = true
	if len(s.clients) == 0 {
		return nil
	}
	return s.clients[0]
}

// queueInput stores the pilot's input for the next tick.
func (s *Server) queueInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 || s.clients[0] != client {
		return
	}
	s.pending = append(s.pending, input)
}

// mergeInputs folds one tick's batch into a single input. The newest input
// wins, except that a powerup press anywhere in the batch is kept. Inputs not
// newer than lastSeq are stale.
func mergeInputs(batch []messages.PlayerInput, lastSeq uint32) (messages.PlayerInput, bool) {
	var merged messages.PlayerInput
	found := false
	powerup := false
	for _, in := range batch {
		if in.Sequence <= lastSeq {
			continue
		}
		if in.Actions[cfg.ActionPowerup] {
			powerup = true
		}
		if !found || in.Sequence > merged.Sequence {
			merged = in
			found = true
		}
	}
	if !found {
		return merged, false
	}

	actions := make(map[cfg.ActionID]bool, len(merged.Actions)+1)
	for a, pressed := range merged.Actions {
		actions[a] = pressed
	}
	if powerup {
		actions[cfg.ActionPowerup] = true
	}
	merged.Actions = actions
	return merged, true
}

// step advances the run by one tick. The run pauses while nobody pilots.
func (s *Server) step(dt float64) {
	s.mu.Lock()
	piloted := len(s.clients) > 0
	in, ok := mergeInputs(s.pending, s.lastSeq)
	s.pending = nil
	if ok {
		s.lastSeq = in.Sequence
	}
	lastSeq := s.lastSeq
	reset := s.resetInput
	s.resetInput = false
	s.mu.Unlock()

	s.simMu.Lock()
	defer s.simMu.Unlock()

	if reset {
		s.arena.SetInput(nil, nil)
	}
	if ok {
		var aim *dmath.Vec2
		if in.HasAim {
			aim = &dmath.Vec2{X: in.AimX, Y: in.AimY}
		}
		s.arena.SetInput(in.Actions, aim)
	}

	if piloted {
		s.arena.Update(dt)
	}
	s.repl.Sync(s.arena, lastSeq)
	s.observeWave()
}

func (s *Server) observeWave() {
	sum := s.arena.Summary()
	if sum.Wave <= s.lastWave {
		return
	}
	s.lastWave = sum.Wave
	log.Printf("[server] %s reached wave %d (%d kills)", s.arenaName, sum.Wave, sum.Kills)

	if s.records == nil {
		return
	}
	if _, err := s.records.Observe(s.arenaName, sum.Wave, sum.Kills, sum.Level); err != nil {
		log.Printf("[server] Warning: Could not save records: %v", err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.arena.World()
}

// Arena returns the hosted run.
func (s *Server) Arena() *scenes.Arena {
	return s.arena
}

// Name returns the server display name.
func (s *Server) Name() string {
	return s.name
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

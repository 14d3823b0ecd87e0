package components

import (
	"context"
	"errors"
	"log"

	"github.com/automoto/wavebreak/shared/timer"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// Wave director phases
const (
	PhaseIdle      = "idle"
	PhaseSpawning  = "spawning"
	PhaseWaiting   = "waiting"
	PhaseAdvancing = "advancing"
)

// Wave director phase events
const (
	EventStart   = "start"
	EventSpawned = "spawned"
	EventCleared = "cleared"
)

// WaveData is the singleton wave director state.
type WaveData struct {
	Number int // Starts at 1, only ever increases
	Quota  int
	Live   int // Enemies created this wave and not yet dying, >= 0

	SpawnInProgress   bool
	NextWaveScheduled bool
	SpawnSlot         int // Next slot to fill, 0..Quota-1
	SpawnTimer        timer.Timer
	AdvanceTimer      timer.Timer

	Templates    []string
	BossTemplate string

	Phase *fsm.FSM
}

// NewWavePhase builds the idle -> spawning -> waiting -> advancing -> spawning machine.
func NewWavePhase() *fsm.FSM {
	return fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: EventStart, Src: []string{PhaseIdle, PhaseAdvancing, PhaseWaiting}, Dst: PhaseSpawning},
			{Name: EventSpawned, Src: []string{PhaseSpawning}, Dst: PhaseWaiting},
			{Name: EventCleared, Src: []string{PhaseWaiting}, Dst: PhaseAdvancing},
		},
		fsm.Callbacks{},
	)
}

// Transition fires a phase event. Re-entering the current phase is not an error.
func (w *WaveData) Transition(event string) {
	if w.Phase == nil {
		return
	}
	err := w.Phase.Event(context.Background(), event)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	log.Printf("[wave] phase %s: event %s rejected: %v", w.Phase.Current(), event, err)
}

// PhaseName returns the current phase, idle when no machine is attached.
func (w *WaveData) PhaseName() string {
	if w.Phase == nil {
		return PhaseIdle
	}
	return w.Phase.Current()
}

var Wave = donburi.NewComponentType[WaveData]()

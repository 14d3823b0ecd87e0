package network

import (
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/gamemath"
	"github.com/automoto/wavebreak/shared/messages"
	dmath "github.com/yohamta/donburi/features/math"
)

const predictionBufferSize = 64

// InputRecord stores an input alongside the predicted position after applying it.
type InputRecord struct {
	Input     messages.PlayerInput
	Predicted dmath.Vec2
}

// PredictionBuffer is a ring buffer that stores recent inputs and their
// predicted outcomes for server reconciliation.
type PredictionBuffer struct {
	history [predictionBufferSize]InputRecord
	nextSeq uint32
}

// Store saves an input and the resulting predicted position.
func (pb *PredictionBuffer) Store(input messages.PlayerInput, predicted dmath.Vec2) {
	idx := input.Sequence % predictionBufferSize
	pb.history[idx] = InputRecord{
		Input:     input,
		Predicted: predicted,
	}
	pb.nextSeq = input.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not found
// or if the slot has been overwritten. Sequences start at 1.
func (pb *PredictionBuffer) Get(seq uint32) (InputRecord, bool) {
	if seq == 0 {
		return InputRecord{}, false
	}
	idx := seq % predictionBufferSize
	record := pb.history[idx]
	if record.Input.Sequence != seq {
		return InputRecord{}, false
	}
	return record, true
}

// NextSeq returns the next expected sequence number.
func (pb *PredictionBuffer) NextSeq() uint32 {
	return pb.nextSeq
}

// GetUnacknowledged returns all stored inputs with sequence numbers greater
// than lastAcked and less than nextSeq (i.e. inputs the server hasn't
// confirmed yet).
func (pb *PredictionBuffer) GetUnacknowledged(lastAcked uint32) []InputRecord {
	var results []InputRecord
	for seq := lastAcked + 1; seq < pb.nextSeq; seq++ {
		if record, ok := pb.Get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// PredictionError calculates the distance between predicted and actual server
// position for a given sequence.
func (pb *PredictionBuffer) PredictionError(seq uint32, server dmath.Vec2) float64 {
	record, ok := pb.Get(seq)
	if !ok {
		return 0
	}
	return gamemath.Distance(record.Predicted, server)
}

// Reconcile replays unacknowledged inputs on top of the server position,
// each held for dt seconds.
func (pb *PredictionBuffer) Reconcile(server dmath.Vec2, lastAcked uint32, dt float64) dmath.Vec2 {
	pos := server
	for _, record := range pb.GetUnacknowledged(lastAcked) {
		pos = Predict(pos, record.Input, dt)
	}
	return pos
}

// Predict applies one input's movement locally, matching the server's walk.
func Predict(pos dmath.Vec2, input messages.PlayerInput, dt float64) dmath.Vec2 {
	var dir dmath.Vec2
	if input.Actions[cfg.ActionMoveUp] {
		dir.Y--
	}
	if input.Actions[cfg.ActionMoveDown] {
		dir.Y++
	}
	if input.Actions[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Actions[cfg.ActionMoveRight] {
		dir.X++
	}

	speed := cfg.Player.MoveSpeed
	if input.Actions[cfg.ActionSprint] {
		speed *= gamemath.SprintMultiplier
	}
	next, _ := gamemath.Walk(pos, dir, speed, dt)
	return next
}

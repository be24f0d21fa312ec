// Package testutils provides rollers and fixtures shared by package tests
package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns queued faces in order. It fails the roll when the
// queue runs dry or a face does not fit the requested die, which makes an
// unexpected extra draw visible in tests.
type ScriptedRoller struct {
	faces []int
	sizes []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller queues faces
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Queue appends more faces
func (r *ScriptedRoller) Queue(faces ...int) {
	r.faces = append(r.faces, faces...)
}

// Remaining returns how many queued faces were not drawn
func (r *ScriptedRoller) Remaining() int {
	return len(r.faces)
}

// Sizes returns the die sizes requested so far, in order
func (r *ScriptedRoller) Sizes() []int {
	return r.sizes
}

// Roll pops the next face
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if len(r.faces) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted on d%d", size)
	}
	face := r.faces[0]
	if face < 1 || face > size {
		return 0, fmt.Errorf("scripted face %d does not fit d%d", face, size)
	}
	r.faces = r.faces[1:]
	r.sizes = append(r.sizes, size)
	return face, nil
}

// RollN pops count faces
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}

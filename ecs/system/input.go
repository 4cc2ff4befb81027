package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
)

// Key repeat timing in ticks, close to a desktop keyboard at 60 TPS.
const (
	RepeatDelay    = 30
	RepeatInterval = 2
)

// KeySource reports key edges for the current tick and which keys are held.
type KeySource interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenKeys) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// InputSystem turns key edges into key events. The most recently pressed key
// repeats while held, the way a keyboard does. A letter pressed with Shift
// held is upper case ("W"), and its release and repeats keep the name it was
// pressed with.
type InputSystem struct {
	source   KeySource
	pressed  []ebiten.Key
	released []ebiten.Key
	names    map[ebiten.Key]drive.Key

	repeatKey ebiten.Key
	repeating bool
	heldTicks int
}

// NewInputSystem polls source, or Ebiten's keyboard when source is nil.
func NewInputSystem(source KeySource) *InputSystem {
	if source == nil {
		source = ebitenKeys{}
	}
	return &InputSystem{source: source, names: make(map[ebiten.Key]drive.Key)}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	i.released = i.source.AppendJustReleasedKeys(i.released[:0])
	i.pressed = i.source.AppendJustPressedKeys(i.pressed[:0])
	events := w.Events()

	for _, k := range i.released {
		events.Push(keyEvent(i.pressedName(k), false, false))
		delete(i.names, k)
		if i.repeating && k == i.repeatKey {
			i.repeating = false
		}
	}
	if len(i.pressed) > 0 {
		shift := i.source.IsKeyPressed(ebiten.KeyShift)
		for _, k := range i.pressed {
			name := keyName(k, shift)
			i.names[k] = name
			events.Push(keyEvent(name, true, false))
		}
	}

	if n := len(i.pressed); n > 0 {
		i.repeatKey = i.pressed[n-1]
		i.repeating = true
		i.heldTicks = 0
		return
	}
	if !i.repeating {
		return
	}

	i.heldTicks++
	if i.heldTicks >= RepeatDelay && (i.heldTicks-RepeatDelay)%RepeatInterval == 0 {
		events.Push(keyEvent(i.pressedName(i.repeatKey), true, true))
	}
}

// pressedName is the name k was pressed with.
func (i *InputSystem) pressedName(k ebiten.Key) drive.Key {
	if name, ok := i.names[k]; ok {
		return name
	}
	return KeyName(k)
}

func keyEvent(name drive.Key, down, repeat bool) ecs.Event {
	return ecs.Event{
		Type: ecs.EventKey,
		Data: ecs.KeyEvent{Key: string(name), Down: down, Repeat: repeat},
	}
}

// KeyName maps an Ebiten key to its web key name: letters are lower case,
// arrows are "ArrowUp" and so on, and other keys keep Ebiten's name.
func KeyName(k ebiten.Key) drive.Key {
	return keyName(k, false)
}

// keyName is KeyName with Shift applied: shifted letters stay upper case, so
// Shift+w is "W" and drives nothing.
func keyName(k ebiten.Key, shift bool) drive.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return drive.KeyArrowUp
	case ebiten.KeyArrowDown:
		return drive.KeyArrowDown
	case ebiten.KeyArrowLeft:
		return drive.KeyArrowLeft
	case ebiten.KeyArrowRight:
		return drive.KeyArrowRight
	}

	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' && !shift {
		return drive.Key(strings.ToLower(name))
	}
	return drive.Key(name)
}

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	LeftPressed      bool
	LeftJustPressed  bool
	RightJustPressed bool

	// Keyboard
	KeysJustPressed map[ebiten.Key]bool
}

// watchedKeys is the set the host cares about: shop slots, start/advance,
// restart, quit.
var watchedKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR, ebiten.KeyEscape,
}

func NewInputState() *InputState {
	return &InputState{
		KeysJustPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	for _, k := range watchedKeys {
		s.KeysJustPressed[k] = inpututil.IsKeyJustPressed(k)
	}
}

// IsKeyJustPressed reports whether a watched key went down this frame
func (s *InputState) IsKeyJustPressed(k ebiten.Key) bool {
	return s.KeysJustPressed[k]
}

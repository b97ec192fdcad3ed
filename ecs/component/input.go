package component

// Input stores per-frame input state for the player. Move is normalized.
type Input struct {
	MoveX float64
	MoveY float64

	SkillsHeld   bool
	PausePressed bool
	MutePressed  bool
	CopyPressed  bool
}

var InputComponent = NewComponent[Input]()

package state

type Phase int

const (
	MainMenu Phase = iota
	RoomTransition
	InGame
	Paused
	RestartCycle
	Outro
)

func (p Phase) String() string {
	switch p {
	case MainMenu:
		return "main_menu"
	case RoomTransition:
		return "room_transition"
	case InGame:
		return "in_game"
	case Paused:
		return "paused"
	case RestartCycle:
		return "restart_cycle"
	case Outro:
		return "outro"
	}
	return "unknown"
}

// Simulating reports whether gameplay systems should advance.
func (p Phase) Simulating() bool {
	return p == InGame
}

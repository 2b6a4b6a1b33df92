package pkg

type Action string

const (
	ActionNone     Action = ""
	ActionExit     Action = "Exit"
	ActionFlip     Action = "Flip"
	ActionNewBoard Action = "New Board"
)

var keyActions = map[rune]Action{
	'q': ActionExit,
	'Q': ActionExit,
	'f': ActionFlip,
	'F': ActionFlip,
	'n': ActionNewBoard,
	'N': ActionNewBoard,
}

// ActionForKey returns the action bound to r, or ActionNone.
func ActionForKey(r rune) Action {
	return keyActions[r]
}

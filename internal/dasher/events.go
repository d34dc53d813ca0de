package dasher

// EventKind is a presentation signal raised by the session.
type EventKind int

const (
	EventHit          EventKind = iota // a contact hit landed on the player
	EventPickup                        // a heart was picked up
	EventMusicStart                    // start the background loop
	EventMusicStop                     // stop the background loop
	EventDefeatStart                   // start the defeat loop
	EventDefeatStop                    // stop the defeat loop
	EventGameOver                      // the run ended; Score is final
	EventNewHighScore                  // Score beat the stored best
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventPickup:
		return "pickup"
	case EventMusicStart:
		return "music-start"
	case EventMusicStop:
		return "music-stop"
	case EventDefeatStart:
		return "defeat-start"
	case EventDefeatStop:
		return "defeat-stop"
	case EventGameOver:
		return "game-over"
	case EventNewHighScore:
		return "new-high-score"
	default:
		return "unknown"
	}
}

// Event is one signal. Score is set for EventGameOver and EventNewHighScore.
type Event struct {
	Kind  EventKind
	Score int
}

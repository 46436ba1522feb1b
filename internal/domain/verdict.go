package domain

import "time"

// Action is the decision of a moderation component for one message
type Action string

const (
	ActionNone Action = "none"
	ActionWarn Action = "warn"
	ActionMute Action = "mute"
)

// Verdict is the output of a detector or filter, consumed by the
// transport layer to apply side effects
type Verdict struct {
	Action        Action
	Notice        string
	MuteFor       time.Duration
	DeleteMessage bool
}

// NoAction is the verdict for a message that passed a check
func NoAction() Verdict {
	return Verdict{Action: ActionNone}
}

// Muted reports whether the verdict asks for a mute
func (v Verdict) Muted() bool {
	return v.Action == ActionMute
}

// AnswerResult is produced when a competition answer matches
type AnswerResult struct {
	UserID int64
	ChatID int64
	Points int
	Notice string
}

package domain

// Competition is the single Q/A round of a chat.
// At most one row exists per chat; starting a new round replaces it.
type Competition struct {
	ChatID   int64
	Question string
	Answer   string // stored lowercased and trimmed
	Active   bool
}

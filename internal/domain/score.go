package domain

// UserScore holds the persistent counters for a user in a chat
type UserScore struct {
	UserID   int64
	ChatID   int64
	Points   int
	Warnings int
}

// LeaderboardEntry is one row of a chat leaderboard
type LeaderboardEntry struct {
	UserID int64
	Points int
}

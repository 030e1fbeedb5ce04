package models

// MatchResult is a reported outcome between two participants.
// Winner and Loser are matched against the participants by plain string
// equality and are not required to name either of them.
type MatchResult struct {
	PlayerX *string `json:"player_x"`
	PlayerO *string `json:"player_o"`
	Winner  *string `json:"winner"`
	Loser   *string `json:"loser"`
}

// Participants returns the players in processing order (X first).
// Both slots are kept even when they hold the same name.
func (m MatchResult) Participants() []string {
	return []string{*m.PlayerX, *m.PlayerO}
}

// Delta is the score change for name: +1 for the winner, -1 for the loser.
func (m MatchResult) Delta(name string) int {
	if m.Winner != nil && *m.Winner == name {
		return 1
	}
	if m.Loser != nil && *m.Loser == name {
		return -1
	}
	return 0
}

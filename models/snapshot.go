package models

import "time"

// ScoreboardSnapshot is the exported copy of the leaderboard at a point in time.
type ScoreboardSnapshot struct {
	Label   string          `json:"label"`
	TakenAt time.Time       `json:"taken_at"`
	Players []SnapshotEntry `json:"players"`
}

type SnapshotEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NewScoreboardSnapshot ranks scores that are already sorted by score
// descending. Tied scores share a rank and the next rank skips (1, 2, 2, 4).
func NewScoreboardSnapshot(label string, takenAt time.Time, scores []RankedScore) ScoreboardSnapshot {
	entries := make([]SnapshotEntry, len(scores))
	for i, s := range scores {
		rank := i + 1
		if i > 0 && s.Score == scores[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = SnapshotEntry{Rank: rank, Name: s.Name, Score: s.Score}
	}
	return ScoreboardSnapshot{
		Label:   label,
		TakenAt: takenAt.UTC(),
		Players: entries,
	}
}

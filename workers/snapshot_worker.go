// workers/snapshot_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tictactoe-scoreboard/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ObjectUploader stores a finished snapshot and returns where it landed.
type ObjectUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// SnapshotWorker exports the ranked scoreboard as a JSON document.
type SnapshotWorker struct {
	uploader ObjectUploader
	label    string
	now      func() time.Time
}

func NewSnapshotWorker(uploader ObjectUploader, label string) *SnapshotWorker {
	return &SnapshotWorker{
		uploader: uploader,
		label:    label,
		now:      time.Now,
	}
}

// Export writes one snapshot and returns its location.
func (w *SnapshotWorker) Export(ctx context.Context, scores []models.RankedScore) (string, error) {
	snap := models.NewScoreboardSnapshot(w.label, w.now(), scores)

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := w.objectKey(snap.TakenAt)
	location, err := w.uploader.Upload(ctx, key, body, "application/json")
	if err != nil {
		return "", err
	}

	log.Printf("[Snapshot] exported %d players to %s", len(snap.Players), location)
	return location, nil
}

// Run adapts Export to the scheduler callback.
func (w *SnapshotWorker) Run(ctx context.Context, scores []models.RankedScore) error {
	_, err := w.Export(ctx, scores)
	return err
}

func (w *SnapshotWorker) objectKey(takenAt time.Time) string {
	prefix := slug.Make(w.label)
	if prefix == "" {
		prefix = "scoreboard"
	}
	return fmt.Sprintf("scoreboards/%s/%s-%s.json",
		prefix, takenAt.Format("20060102T150405Z"), uuid.NewString()[:8])
}

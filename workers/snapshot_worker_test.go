package workers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tictactoe-scoreboard/models"
)

type recordingUploader struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (r *recordingUploader) Upload(_ context.Context, key string, body []byte, contentType string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.key, r.body, r.contentType = key, body, contentType
	return "mem://" + key, nil
}

func TestExportWritesRankedDocument(t *testing.T) {
	up := &recordingUploader{}
	w := NewSnapshotWorker(up, "Tic-Tac-Toe Finals")
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	scores := []models.RankedScore{
		{Name: "Alice", Score: 3},
		{Name: "Bob", Score: 1},
		{Name: "Carol", Score: 1},
		{Name: "Dave", Score: -2},
	}
	location, err := w.Export(context.Background(), scores)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if location != "mem://"+up.key {
		t.Fatalf("location = %q, key = %q", location, up.key)
	}
	if !strings.HasPrefix(up.key, "scoreboards/tic-tac-toe-finals/20260301T123000Z-") || !strings.HasSuffix(up.key, ".json") {
		t.Fatalf("key = %q", up.key)
	}
	if up.contentType != "application/json" {
		t.Fatalf("content type = %q", up.contentType)
	}

	var snap models.ScoreboardSnapshot
	if err := json.Unmarshal(up.body, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Label != "Tic-Tac-Toe Finals" {
		t.Fatalf("label = %q", snap.Label)
	}
	wantRanks := []int{1, 2, 2, 4}
	for i, e := range snap.Players {
		if e.Rank != wantRanks[i] || e.Name != scores[i].Name || e.Score != scores[i].Score {
			t.Fatalf("players[%d] = %+v", i, e)
		}
	}
}

func TestExportEmptyLabelFallsBack(t *testing.T) {
	up := &recordingUploader{}
	w := NewSnapshotWorker(up, "")
	if err := w.Run(context.Background(), nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(up.key, "scoreboards/scoreboard/") {
		t.Fatalf("key = %q", up.key)
	}
}

func TestExportUploadError(t *testing.T) {
	boom := errors.New("bucket gone")
	w := NewSnapshotWorker(&recordingUploader{err: boom}, "board")
	if err := w.Run(context.Background(), []models.RankedScore{{Name: "A", Score: 0}}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

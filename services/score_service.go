package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"tictactoe-scoreboard/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

// Migrate creates the players table if it is missing. Call once at startup.
func (s *ScoreService) Migrate(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).AutoMigrate(&models.Player{}); err != nil {
		return fmt.Errorf("%w: migrate players: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Ping checks that a pooled connection to the store is usable.
func (s *ScoreService) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetRankedScores returns every player by score descending, ties by name.
func (s *ScoreService) GetRankedScores(ctx context.Context) ([]models.RankedScore, error) {
	var players []models.Player
	err := s.DB.WithContext(ctx).
		Order("score DESC").
		Order("player_name ASC").
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %v", ErrStoreUnavailable, err)
	}

	scores := make([]models.RankedScore, len(players))
	for i, p := range players {
		scores[i] = models.RankedScore{Name: p.PlayerName, Score: p.Score}
	}
	return scores, nil
}

// ApplyMatchResult records a match outcome for both participants in one
// transaction. A player seen for the first time is inserted at 0 and the
// outcome of this call is not applied to them. Self-matches are processed
// once per slot.
func (s *ScoreService) ApplyMatchResult(ctx context.Context, match models.MatchResult) error {
	if match.PlayerX == nil {
		return fmt.Errorf("%w: player_x is required", ErrMalformedRequest)
	}
	if match.PlayerO == nil {
		return fmt.Errorf("%w: player_o is required", ErrMalformedRequest)
	}
	for _, name := range match.Participants() {
		if utf8.RuneCountInString(name) > models.MaxPlayerNameLength {
			return fmt.Errorf("%w: player name longer than %d characters", ErrMalformedRequest, models.MaxPlayerNameLength)
		}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPlayers(tx, match.Participants()); err != nil {
			return err
		}
		for _, name := range match.Participants() {
			if err := applyToPlayer(tx, name, match.Delta(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if isDataError(err) {
		return fmt.Errorf("%w: apply match result: %v", ErrMalformedRequest, err)
	}
	if err != nil {
		return fmt.Errorf("%w: apply match result: %v", ErrStoreUnavailable, err)
	}

	log.Printf("[Ledger] match recorded: x=%q o=%q", *match.PlayerX, *match.PlayerO)
	return nil
}

// lockPlayers takes row locks on the existing participants in name order so
// concurrent matches over the same pair always lock in the same sequence.
func lockPlayers(tx *gorm.DB, names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var locked []models.Player
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_name IN ?", sorted).
		Order("player_name ASC").
		Find(&locked).Error
}

func applyToPlayer(tx *gorm.DB, name string, delta int) error {
	var player models.Player
	err := tx.Where("player_name = ?", name).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		player = models.Player{PlayerName: name, Score: 0}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_name"}},
			DoNothing: true,
		}).Create(&player).Error
	}
	if err != nil {
		return err
	}

	if delta == 0 {
		return nil
	}
	return tx.Model(&models.Player{}).
		Where("player_name = ?", name).
		UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
}

// isDataError reports Postgres data exceptions (SQLSTATE class 22), which a
// retry cannot fix.
func isDataError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "22")
}

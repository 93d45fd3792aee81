// Package stats persists cumulative statistics and unlocked achievements in
// SQLite, and implements the engine's event recorder on top of them.
package stats

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/achievements"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
)

// Store wraps a SQLite connection holding statistics, faction usage and
// unlocked achievements across games.
type Store struct {
	conn      *sqlx.DB
	logger    zerolog.Logger
	lastEvent time.Time
}

// Open opens or creates the statistics database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		conn:      conn,
		logger:    log.With().Str("component", "stats").Logger(),
		lastEvent: time.Now(),
	}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS stats (
		key TEXT PRIMARY KEY,
		value REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS victories (
		type TEXT PRIMARY KEY,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS factions (
		faction TEXT PRIMARY KEY,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS achievements (
		name TEXT PRIMARY KEY,
		unlocked_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		faction TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Statistics loads the cumulative aggregate.
func (s *Store) Statistics() (achievements.Statistics, error) {
	stats := achievements.NewStatistics()

	rows, err := s.conn.Queryx("SELECT key, value FROM stats")
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return stats, err
		}
		switch key {
		case "playtime":
			stats.Playtime = value
		case "turns_played":
			stats.TurnsPlayed = int(value)
		case "defeats":
			stats.Defeats = int(value)
		}
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	vrows, err := s.conn.Queryx("SELECT type, count FROM victories")
	if err != nil {
		return stats, err
	}
	defer vrows.Close()
	for vrows.Next() {
		var vt string
		var count int
		if err := vrows.Scan(&vt, &count); err != nil {
			return stats, err
		}
		stats.Victories[core.VictoryType(vt)] = count
	}
	if err := vrows.Err(); err != nil {
		return stats, err
	}

	frows, err := s.conn.Queryx("SELECT faction, count FROM factions")
	if err != nil {
		return stats, err
	}
	defer frows.Close()
	for frows.Next() {
		var f string
		var count int
		if err := frows.Scan(&f, &count); err != nil {
			return stats, err
		}
		stats.FactionsUsed[catalogue.Faction(f)] = count
	}
	return stats, frows.Err()
}

// UnlockedAchievements returns the names of every unlocked achievement as a
// lookup set.
func (s *Store) UnlockedAchievements() (map[string]bool, error) {
	var names []string
	if err := s.conn.Select(&names, "SELECT name FROM achievements"); err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(names))
	for _, n := range names {
		unlocked[n] = true
	}
	return unlocked, nil
}

// RecordGameEvent updates the aggregate for one end-of-turn, victory or
// defeat event and returns the names of achievements it newly unlocked.
// Persistence failures are logged and swallowed; the game must not hang on a
// broken statistics file.
func (s *Store) RecordGameEvent(gs *game.GameState, victory *core.Victory, incrementDefeats bool) []string {
	elapsed := time.Since(s.lastEvent).Seconds()
	s.lastEvent = time.Now()

	stats, err := s.Statistics()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load statistics")
		return nil
	}
	unlocked, err := s.UnlockedAchievements()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load achievements")
		return nil
	}

	stats.Playtime += elapsed
	stats.TurnsPlayed++
	if incrementDefeats {
		stats.Defeats++
	}
	if victory != nil {
		stats.Victories[victory.Type]++
	}
	if p := gs.HumanPlayer(); p != nil {
		recorded, err := s.gameRecorded(gs.ID)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to check game record")
			return nil
		}
		if !recorded {
			stats.FactionsUsed[p.Faction]++
		}
	}

	newly := achievements.Verify(gs, stats, unlocked, victory != nil)

	if err := s.persist(gs, stats, newly); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist statistics")
		return nil
	}

	names := make([]string, 0, len(newly))
	for _, a := range newly {
		names = append(names, a.Name)
	}
	if len(names) > 0 {
		s.logger.Info().Strs("achievements", names).Msg("Achievements unlocked")
	}
	return names
}

func (s *Store) gameRecorded(gameID string) (bool, error) {
	var count int
	err := s.conn.Get(&count, "SELECT COUNT(*) FROM games WHERE id = ?", gameID)
	return count > 0, err
}

func (s *Store) persist(gs *game.GameState, stats achievements.Statistics, newly []achievements.Achievement) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range map[string]float64{
		"playtime":     stats.Playtime,
		"turns_played": float64(stats.TurnsPlayed),
		"defeats":      float64(stats.Defeats),
	} {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO stats (key, value) VALUES (?, ?)", key, value,
		); err != nil {
			return err
		}
	}

	for vt, count := range stats.Victories {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO victories (type, count) VALUES (?, ?)", string(vt), count,
		); err != nil {
			return err
		}
	}

	for f, count := range stats.FactionsUsed {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO factions (faction, count) VALUES (?, ?)", string(f), count,
		); err != nil {
			return err
		}
	}

	if p := gs.HumanPlayer(); p != nil {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO games (id, faction) VALUES (?, ?)", gs.ID, string(p.Faction),
		); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, a := range newly {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO achievements (name, unlocked_at) VALUES (?, ?)", a.Name, now,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

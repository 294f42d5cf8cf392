package main

import (
	"database/sql"
	"log"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// PlayerRow represents a player record in the database
type PlayerRow struct {
	ID        int64
	Username  string
	PassHash  string
	IsGuest   bool
	CreatedAt time.Time
}

// StatsRow represents player stats
type StatsRow struct {
	PlayerID int64
	Wins     int
	Losses   int
	Playtime float64 // seconds in the arena
	BestTime float64 // fastest victory, 0 = no victory yet
	XP       int
	Level    int
}

// EncounterRow represents one completed encounter
type EncounterRow struct {
	ID        int64
	PlayerID  int64
	Boss      int
	Victory   bool
	Duration  float64
	MaxPhase  int
	XPEarned  int
	CreatedAt time.Time
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		pass_hash TEXT NOT NULL DEFAULT '',
		is_guest INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS stats (
		player_id INTEGER PRIMARY KEY REFERENCES players(id),
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		playtime REAL NOT NULL DEFAULT 0,
		best_time REAL NOT NULL DEFAULT 0,
		xp INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS encounters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players(id),
		boss INTEGER NOT NULL DEFAULT 0,
		victory INTEGER NOT NULL DEFAULT 0,
		duration REAL NOT NULL DEFAULT 0,
		max_phase INTEGER NOT NULL DEFAULT 1,
		xp_earned INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS damage_events (
		encounter_id INTEGER NOT NULL REFERENCES encounters(id),
		kind TEXT NOT NULL,
		amount REAL NOT NULL,
		x REAL NOT NULL DEFAULT 0,
		y REAL NOT NULL DEFAULT 0,
		ts REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS achievements (
		player_id INTEGER NOT NULL REFERENCES players(id),
		achievement_id TEXT NOT NULL,
		unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (player_id, achievement_id)
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		player_id INTEGER,
		session_id TEXT,
		data TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_encounters_player ON encounters(player_id);
	CREATE INDEX IF NOT EXISTS idx_damage_events_enc ON damage_events(encounter_id);
	CREATE INDEX IF NOT EXISTS idx_players_username ON players(username);
	CREATE INDEX IF NOT EXISTS idx_analytics_created ON analytics_events(created_at);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// CreatePlayer creates a new player account (returns player ID)
func (db *DB) CreatePlayer(username, passHash string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players (username, pass_hash) VALUES (?, ?)",
		username, passHash,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	// Create stats row
	_, err = db.conn.Exec("INSERT INTO stats (player_id) VALUES (?)", id)
	return id, err
}

// CreateGuest creates a guest player (no password)
func (db *DB) CreateGuest(username string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players (username, is_guest) VALUES (?, 1)",
		username,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	_, err = db.conn.Exec("INSERT INTO stats (player_id) VALUES (?)", id)
	return id, err
}

// GetPlayerByUsername returns a player by username
func (db *DB) GetPlayerByUsername(username string) (*PlayerRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, is_guest, created_at FROM players WHERE username = ?",
		username,
	)
	p := &PlayerRow{}
	err := row.Scan(&p.ID, &p.Username, &p.PassHash, &p.IsGuest, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// GetPlayerByID returns a player by ID
func (db *DB) GetPlayerByID(id int64) (*PlayerRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, is_guest, created_at FROM players WHERE id = ?",
		id,
	)
	p := &PlayerRow{}
	err := row.Scan(&p.ID, &p.Username, &p.PassHash, &p.IsGuest, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// UsernameExists checks if a username is taken
func (db *DB) UsernameExists(username string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM players WHERE username = ?", username).Scan(&count)
	return count > 0, err
}

// GetStats returns player stats
func (db *DB) GetStats(playerID int64) (*StatsRow, error) {
	row := db.conn.QueryRow(
		"SELECT player_id, wins, losses, playtime, best_time, xp, level FROM stats WHERE player_id = ?",
		playerID,
	)
	s := &StatsRow{}
	err := row.Scan(&s.PlayerID, &s.Wins, &s.Losses, &s.Playtime, &s.BestTime, &s.XP, &s.Level)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// XPForLevel returns the total XP required to reach a given level.
// Level 1 requires 0 XP, level 2 requires 100, etc.
// Formula: sum of 100 * i^1.5 for i in 1..level-1
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	total := 0.0
	for i := 1; i < level; i++ {
		total += 100.0 * math.Pow(float64(i), 1.5)
	}
	return int(total)
}

// XPToNextLevel returns XP needed from current level to reach the next level
func XPToNextLevel(level int) int {
	return XPForLevel(level+1) - XPForLevel(level)
}

// CalculateLevel returns the level for a given total XP amount
func CalculateLevel(totalXP int) int {
	level := 1
	for {
		needed := XPForLevel(level + 1)
		if totalXP < needed {
			return level
		}
		level++
		if level > 100 { // cap at 100
			return 100
		}
	}
}

// UpdateStatsAfterEncounter updates player stats after an encounter ends.
// Returns (newXP, newLevel) for client notification.
func (db *DB) UpdateStatsAfterEncounter(playerID int64, won bool, duration float64, xpEarned int) (int, int, error) {
	winInc := 0
	lossInc := 0
	if won {
		winInc = 1
	} else {
		lossInc = 1
	}

	_, err := db.conn.Exec(`
		UPDATE stats SET
			wins = wins + ?,
			losses = losses + ?,
			playtime = playtime + ?,
			xp = xp + ?
		WHERE player_id = ?`,
		winInc, lossInc, duration, xpEarned, playerID,
	)
	if err != nil {
		return 0, 0, err
	}

	if won {
		_, err = db.conn.Exec(`
			UPDATE stats SET best_time = ?
			WHERE player_id = ? AND (best_time = 0 OR best_time > ?)`,
			duration, playerID, duration,
		)
		if err != nil {
			return 0, 0, err
		}
	}

	// Read back total XP and calculate proper level
	var totalXP int
	err = db.conn.QueryRow("SELECT xp FROM stats WHERE player_id = ?", playerID).Scan(&totalXP)
	if err != nil {
		return 0, 0, err
	}
	newLevel := CalculateLevel(totalXP)

	_, err = db.conn.Exec("UPDATE stats SET level = ? WHERE player_id = ?", newLevel, playerID)
	return totalXP, newLevel, err
}

// RecordEncounter records a completed encounter and returns its ID
func (db *DB) RecordEncounter(playerID int64, boss int, victory bool, duration float64, maxPhase, xpEarned int) (int64, error) {
	v := 0
	if victory {
		v = 1
	}
	res, err := db.conn.Exec(
		`INSERT INTO encounters (player_id, boss, victory, duration, max_phase, xp_earned)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playerID, boss, v, duration, maxPhase, xpEarned,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecordDamageEvents persists the damage log of one encounter in a single
// transaction
func (db *DB) RecordDamageEvents(encounterID int64, events []DamageEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO damage_events (encounter_id, kind, amount, x, y, ts) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(encounterID, ev.Kind, ev.Amount, ev.X, ev.Y, ev.Timestamp); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetEncounterHistory returns recent encounters for a player
func (db *DB) GetEncounterHistory(playerID int64, limit int) ([]EncounterRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, player_id, boss, victory, duration, max_phase, xp_earned, created_at
		FROM encounters
		WHERE player_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EncounterRow
	for rows.Next() {
		var r EncounterRow
		var v int
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Boss, &v, &r.Duration, &r.MaxPhase, &r.XPEarned, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Victory = v == 1
		result = append(result, r)
	}
	return result, rows.Err()
}

// LeaderboardEntry represents one row in the leaderboard
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Level    int     `json:"level"`
	XP       int     `json:"xp"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	BestTime float64 `json:"best_time"`
}

// GetLeaderboard returns top players sorted by the given field
func (db *DB) GetLeaderboard(orderBy string, limit int) ([]LeaderboardEntry, error) {
	// Whitelist valid order columns
	validCols := map[string]string{
		"wins": "s.wins DESC", "level": "s.level DESC", "xp": "s.xp DESC",
		"best_time": "CASE WHEN s.best_time > 0 THEN s.best_time ELSE 1e18 END ASC",
	}
	order, ok := validCols[orderBy]
	if !ok {
		order = "s.xp DESC"
	}

	query := `SELECT p.username, s.level, s.xp, s.wins, s.losses, s.best_time
		FROM stats s JOIN players p ON p.id = s.player_id
		WHERE p.is_guest = 0
		ORDER BY ` + order + ` LIMIT ?`

	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Level, &e.XP, &e.Wins, &e.Losses, &e.BestTime); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetAchievements returns the IDs of a player's unlocked achievements
func (db *DB) GetAchievements(playerID int64) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT achievement_id FROM achievements WHERE player_id = ?", playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}

// UnlockAchievement records an achievement unlock. Returns true if it was
// newly unlocked, false if the player already had it.
func (db *DB) UnlockAchievement(playerID int64, achievementID string) (bool, error) {
	res, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievements (player_id, achievement_id) VALUES (?, ?)",
		playerID, achievementID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetSetting returns a server setting, or "" if unset
func (db *DB) GetSetting(key string) string {
	var value string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

// SetSetting stores a server setting
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

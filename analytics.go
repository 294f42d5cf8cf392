package main

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"
)

// Event types for analytics tracking
const (
	EvtEncounterStart = "encounter_start"
	EvtEncounterEnd   = "encounter_end"
	EvtBossPhase      = "boss_phase"
	EvtPlayerDeath    = "player_death"
	EvtAchievement    = "achievement"
	EvtSessionStart   = "session_start"
	EvtSessionEnd     = "session_end"
	EvtLevelUp        = "level_up"
)

// encounterMeta builds the JSON payload for an encounter_start event
func encounterMeta(archetype BossArchetype) string {
	return fmt.Sprintf(`{"boss":%d}`, int(archetype))
}

// phaseMeta builds the JSON payload for a boss_phase event
func phaseMeta(phase int) string {
	return fmt.Sprintf(`{"phase":%d}`, phase)
}

// levelMeta builds the JSON payload for a level_up event
func levelMeta(level int) string {
	return fmt.Sprintf(`{"level":%d}`, level)
}

// resultMeta builds the JSON payload for an encounter_end event
func resultMeta(archetype BossArchetype, victory bool, duration float64) string {
	return fmt.Sprintf(`{"boss":%d,"victory":%t,"duration":%.1f}`, int(archetype), victory, duration)
}

// AnalyticsEvent represents a single trackable event
type AnalyticsEvent struct {
	Type      string
	PlayerID  int64
	SessionID string
	Data      string // JSON metadata (optional)
	Timestamp time.Time
}

// Analytics handles event tracking with batched background writes
type Analytics struct {
	db     *DB
	events chan AnalyticsEvent
	stop   chan struct{}
	wg     sync.WaitGroup

	// Live metrics
	mu              sync.RWMutex
	concurrentPeers int
	activeSessions  int
}

// NewAnalytics creates and starts the analytics background writer
func NewAnalytics(db *DB) *Analytics {
	a := &Analytics{
		db:     db,
		events: make(chan AnalyticsEvent, 1024),
		stop:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.writer()
	return a
}

// Track enqueues an event for async persistence (non-blocking)
func (a *Analytics) Track(evtType string, playerID int64, sessionID string, data string) {
	select {
	case a.events <- AnalyticsEvent{
		Type:      evtType,
		PlayerID:  playerID,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}:
	default:
		// Channel full — drop event rather than blocking the encounter loop
	}
}

// SetConcurrentPeers updates the live connection count metric
func (a *Analytics) SetConcurrentPeers(n int) {
	a.mu.Lock()
	a.concurrentPeers = n
	a.mu.Unlock()
}

// SetActiveSessions updates the live session count metric
func (a *Analytics) SetActiveSessions(n int) {
	a.mu.Lock()
	a.activeSessions = n
	a.mu.Unlock()
}

// GetLiveMetrics returns current live metrics
func (a *Analytics) GetLiveMetrics() (int, int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.concurrentPeers, a.activeSessions
}

// Stop gracefully shuts down the analytics writer
func (a *Analytics) Stop() {
	close(a.stop)
	a.wg.Wait()
}

// writer is the background goroutine that batches and writes events to DB
func (a *Analytics) writer() {
	defer a.wg.Done()

	batch := make([]AnalyticsEvent, 0, 64)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case evt := <-a.events:
			batch = append(batch, evt)
			// Flush immediately if batch is large
			if len(batch) >= 50 {
				a.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				a.flush(batch)
				batch = batch[:0]
			}
		case <-a.stop:
			// Drain remaining events
			close(a.events)
			for evt := range a.events {
				batch = append(batch, evt)
			}
			if len(batch) > 0 {
				a.flush(batch)
			}
			return
		}
	}
}

// flush writes a batch of events to the database
func (a *Analytics) flush(events []AnalyticsEvent) {
	if a.db == nil || len(events) == 0 {
		return
	}
	tx, err := a.db.conn.Begin()
	if err != nil {
		log.Printf("analytics: begin tx error: %v", err)
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO analytics_events (event_type, player_id, session_id, data, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		log.Printf("analytics: prepare error: %v", err)
		return
	}
	defer stmt.Close()

	for _, evt := range events {
		pid := sql.NullInt64{Int64: evt.PlayerID, Valid: evt.PlayerID > 0}
		sid := sql.NullString{String: evt.SessionID, Valid: evt.SessionID != ""}
		data := sql.NullString{String: evt.Data, Valid: evt.Data != ""}
		_, err := stmt.Exec(evt.Type, pid, sid, data, evt.Timestamp.Format(time.RFC3339))
		if err != nil {
			log.Printf("analytics: insert error: %v", err)
		}
	}
	tx.Commit()
}

// --- Query methods for the API ---

// DAUCount returns number of distinct players active today
func (a *Analytics) DAUCount() (int, error) {
	if a.db == nil {
		return 0, nil
	}
	var count int
	err := a.db.conn.QueryRow(`
		SELECT COUNT(DISTINCT player_id) FROM analytics_events
		WHERE player_id IS NOT NULL AND created_at >= date('now')
	`).Scan(&count)
	return count, err
}

// WAUCount returns number of distinct players active in the last 7 days
func (a *Analytics) WAUCount() (int, error) {
	if a.db == nil {
		return 0, nil
	}
	var count int
	err := a.db.conn.QueryRow(`
		SELECT COUNT(DISTINCT player_id) FROM analytics_events
		WHERE player_id IS NOT NULL AND created_at >= date('now', '-7 days')
	`).Scan(&count)
	return count, err
}

// BossStats returns encounter counts and clear rate per boss for the
// last N days
func (a *Analytics) BossStats(days int) ([]BossAnalytics, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.conn.Query(`
		SELECT COALESCE(json_extract(data, '$.boss'), -1) as boss,
			COUNT(*) as cnt,
			AVG(CASE WHEN json_extract(data, '$.victory') THEN 1.0 ELSE 0.0 END) as clear_rate,
			AVG(CAST(json_extract(data, '$.duration') AS REAL)) as avg_dur
		FROM analytics_events
		WHERE event_type = ? AND json_valid(data)
			AND created_at >= date('now', '-' || ? || ' days')
		GROUP BY boss ORDER BY cnt DESC
	`, EvtEncounterEnd, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BossAnalytics
	for rows.Next() {
		var ba BossAnalytics
		var clearRate, avgDur sql.NullFloat64
		if err := rows.Scan(&ba.Boss, &ba.Count, &clearRate, &avgDur); err != nil {
			continue
		}
		ba.ClearRate = clearRate.Float64
		ba.AvgDuration = avgDur.Float64
		result = append(result, ba)
	}
	return result, rows.Err()
}

// EventCounts returns counts of each event type for the last N days
func (a *Analytics) EventCounts(days int) (map[string]int, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.conn.Query(`
		SELECT event_type, COUNT(*) FROM analytics_events
		WHERE created_at >= date('now', '-' || ? || ' days')
		GROUP BY event_type ORDER BY COUNT(*) DESC
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var evtType string
		var count int
		if err := rows.Scan(&evtType, &count); err != nil {
			continue
		}
		result[evtType] = count
	}
	return result, rows.Err()
}

// DailyActiveHistory returns DAU for the last N days
func (a *Analytics) DailyActiveHistory(days int) ([]DayCount, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.conn.Query(`
		SELECT date(created_at) as day, COUNT(DISTINCT player_id)
		FROM analytics_events
		WHERE player_id IS NOT NULL AND created_at >= date('now', '-' || ? || ' days')
		GROUP BY day ORDER BY day
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			continue
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

// BossAnalytics holds aggregated encounter statistics for one boss
type BossAnalytics struct {
	Boss        int     `json:"boss"`
	Count       int     `json:"count"`
	ClearRate   float64 `json:"clear_rate"`
	AvgDuration float64 `json:"avg_duration"`
}

// DayCount holds a count for a specific day
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

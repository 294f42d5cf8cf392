package main

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestXPForLevel(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Errorf("level 1 needs 0 XP, got %d", XPForLevel(1))
	}
	if XPForLevel(2) != 100 {
		t.Errorf("level 2 needs 100 XP, got %d", XPForLevel(2))
	}
	for lvl := 2; lvl <= 20; lvl++ {
		if XPForLevel(lvl) <= XPForLevel(lvl-1) {
			t.Fatalf("XP curve must be strictly increasing at level %d", lvl)
		}
	}
	if XPToNextLevel(1) != 100 {
		t.Errorf("level 1 -> 2 costs 100 XP, got %d", XPToNextLevel(1))
	}
}

func TestCalculateLevel(t *testing.T) {
	if CalculateLevel(0) != 1 {
		t.Errorf("0 XP is level 1, got %d", CalculateLevel(0))
	}
	if CalculateLevel(99) != 1 {
		t.Errorf("99 XP is level 1, got %d", CalculateLevel(99))
	}
	if CalculateLevel(100) != 2 {
		t.Errorf("100 XP is level 2, got %d", CalculateLevel(100))
	}
	if CalculateLevel(1<<30) != 100 {
		t.Errorf("level should cap at 100, got %d", CalculateLevel(1<<30))
	}
	// Round trip: exactly the XP for a level yields that level
	for lvl := 1; lvl <= 10; lvl++ {
		if got := CalculateLevel(XPForLevel(lvl)); got != lvl {
			t.Errorf("CalculateLevel(XPForLevel(%d)) = %d", lvl, got)
		}
	}
}

func TestCreatePlayerAndLookup(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreatePlayer("alice", "hash")
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	p, err := db.GetPlayerByUsername("alice")
	if err != nil || p == nil {
		t.Fatalf("lookup: %v %v", p, err)
	}
	if p.ID != id || p.IsGuest {
		t.Errorf("unexpected player row %+v", p)
	}

	byID, err := db.GetPlayerByID(id)
	if err != nil || byID == nil || byID.Username != "alice" {
		t.Fatalf("lookup by id: %+v %v", byID, err)
	}
	if p, _ := db.GetPlayerByID(id + 1000); p != nil {
		t.Error("unknown id should return nil")
	}

	exists, _ := db.UsernameExists("alice")
	if !exists {
		t.Error("username should be taken")
	}
	if p, _ := db.GetPlayerByUsername("nobody"); p != nil {
		t.Error("unknown username should return nil")
	}

	// The stats row is created alongside the account
	s, err := db.GetStats(id)
	if err != nil || s == nil {
		t.Fatalf("stats: %v %v", s, err)
	}
	if s.Level != 1 || s.XP != 0 {
		t.Errorf("fresh stats %+v", s)
	}
}

func TestDuplicateUsernameRefused(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.CreatePlayer("bob", "h"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreatePlayer("bob", "h"); err == nil {
		t.Error("duplicate username should fail")
	}
}

func TestUpdateStatsAfterEncounter(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("carol", "h")

	xp, level, err := db.UpdateStatsAfterEncounter(id, true, 95.5, 180)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if xp != 180 || level != 2 {
		t.Errorf("got xp=%d level=%d, want 180/2", xp, level)
	}
	s, _ := db.GetStats(id)
	if s.Wins != 1 || s.Losses != 0 {
		t.Errorf("win count %+v", s)
	}
	if s.BestTime != 95.5 {
		t.Errorf("best time %f", s.BestTime)
	}

	// Slower win must not overwrite the best time
	db.UpdateStatsAfterEncounter(id, true, 200, 120)
	s, _ = db.GetStats(id)
	if s.BestTime != 95.5 {
		t.Errorf("slower win overwrote best time: %f", s.BestTime)
	}

	// Faster win does
	db.UpdateStatsAfterEncounter(id, true, 60, 120)
	s, _ = db.GetStats(id)
	if s.BestTime != 60 {
		t.Errorf("faster win should set best time, got %f", s.BestTime)
	}

	// Losses never touch the best time
	db.UpdateStatsAfterEncounter(id, false, 30, 0)
	s, _ = db.GetStats(id)
	if s.Losses != 1 || s.BestTime != 60 {
		t.Errorf("loss handling wrong: %+v", s)
	}
}

func TestRecordEncounterAndHistory(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("dave", "h")

	encID, err := db.RecordEncounter(id, int(BossVoidmaw), true, 123.4, 4, 270)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	events := []DamageEvent{
		{Kind: "beam", Amount: 15, X: 100, Y: 200, Timestamp: 10},
		{Kind: "contact", Amount: 12, X: 150, Y: 250, Timestamp: 20},
	}
	if err := db.RecordDamageEvents(encID, events); err != nil {
		t.Fatalf("record events: %v", err)
	}

	hist, err := db.GetEncounterHistory(id, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("expected 1 encounter, got %d", len(hist))
	}
	r := hist[0]
	if r.Boss != int(BossVoidmaw) || !r.Victory || r.MaxPhase != 4 || r.XPEarned != 270 {
		t.Errorf("unexpected encounter row %+v", r)
	}
}

func TestLeaderboardExcludesGuests(t *testing.T) {
	db := openTestDB(t)
	a, _ := db.CreatePlayer("erin", "h")
	g, _ := db.CreateGuest("Hero_abc123")
	db.UpdateStatsAfterEncounter(a, true, 100, 500)
	db.UpdateStatsAfterEncounter(g, true, 50, 900)

	top, err := db.GetLeaderboard("xp", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("guests must not rank, got %d rows", len(top))
	}
	if top[0].Username != "erin" || top[0].Rank != 1 {
		t.Errorf("unexpected top entry %+v", top[0])
	}
}

func TestLeaderboardBestTimeOrder(t *testing.T) {
	db := openTestDB(t)
	fast, _ := db.CreatePlayer("fast", "h")
	slow, _ := db.CreatePlayer("slow", "h")
	never, _ := db.CreatePlayer("never", "h")
	db.UpdateStatsAfterEncounter(fast, true, 60, 100)
	db.UpdateStatsAfterEncounter(slow, true, 200, 100)
	db.UpdateStatsAfterEncounter(never, false, 30, 0)

	top, err := db.GetLeaderboard("best_time", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	if top[0].Username != "fast" || top[1].Username != "slow" || top[2].Username != "never" {
		t.Errorf("best_time order wrong: %s, %s, %s", top[0].Username, top[1].Username, top[2].Username)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("frank", "h")

	fresh, err := db.UnlockAchievement(id, "first_kill")
	if err != nil || !fresh {
		t.Fatalf("first unlock: fresh=%v err=%v", fresh, err)
	}
	again, err := db.UnlockAchievement(id, "first_kill")
	if err != nil || again {
		t.Errorf("repeat unlock should report false, got %v err=%v", again, err)
	}

	got, _ := db.GetAchievements(id)
	if len(got) != 1 || got[0] != "first_kill" {
		t.Errorf("achievements %v", got)
	}
}

func TestSettingsUpsert(t *testing.T) {
	db := openTestDB(t)

	if v := db.GetSetting("jwt_secret"); v != "" {
		t.Errorf("unset key should read empty, got %q", v)
	}
	if err := db.SetSetting("jwt_secret", "one"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSetting("jwt_secret", "two"); err != nil {
		t.Fatal(err)
	}
	if v := db.GetSetting("jwt_secret"); v != "two" {
		t.Errorf("upsert should keep the latest value, got %q", v)
	}
}

func TestCheckAchievementsFirstWin(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("grace", "h")
	db.UpdateStatsAfterEncounter(id, true, 100, 180)

	unlocked := CheckAchievements(db, id, int(BossSentinel), true, 100, 5)
	ids := make(map[string]bool)
	for _, def := range unlocked {
		ids[def.ID] = true
	}
	if !ids["first_kill"] {
		t.Error("first victory should unlock first_kill")
	}
	if !ids["sentinel_down"] {
		t.Error("sentinel victory should unlock sentinel_down")
	}
	if !ids["speedrunner"] {
		t.Error("sub-two-minute victory should unlock speedrunner")
	}

	// Second identical run unlocks nothing new
	again := CheckAchievements(db, id, int(BossSentinel), true, 100, 5)
	for _, def := range again {
		if ids[def.ID] {
			t.Errorf("achievement %s reported twice", def.ID)
		}
	}
}

func TestCheckAchievementsUntouchable(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("heidi", "h")
	db.UpdateStatsAfterEncounter(id, true, 100, 180)

	unlocked := CheckAchievements(db, id, int(BossVoidmaw), true, 150, 0)
	found := false
	for _, def := range unlocked {
		if def.ID == "untouchable" {
			found = true
		}
	}
	if !found {
		t.Error("flawless victory should unlock untouchable")
	}
}

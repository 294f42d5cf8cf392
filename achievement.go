package main

// Achievement definitions
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_kill", "Giant Slayer", "Defeat your first boss"},
	{"sentinel_down", "Vault Breaker", "Defeat the Sentinel"},
	{"voidmaw_down", "Maw Closer", "Defeat the Voidmaw"},
	{"untouchable", "Untouchable", "Win an encounter without taking a hit"},
	{"speedrunner", "Speedrunner", "Win an encounter in under two minutes"},
	{"persistent", "Persistent", "Win 10 encounters"},
	{"veteran", "Veteran", "Reach level 10"},
	{"elite", "Elite", "Reach level 25"},
	{"legend", "Legend", "Reach level 50"},
	{"survivor", "Survivor", "Spend 1 hour in the arena"},
}

// CheckAchievements checks if any new achievements should be unlocked after
// an encounter. Returns the newly unlocked definitions.
func CheckAchievements(db *DB, playerID int64, archetype int, victory bool, duration float64, hitsTaken int) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_kill":
			return victory
		case "sentinel_down":
			return victory && archetype == int(BossSentinel)
		case "voidmaw_down":
			return victory && archetype == int(BossVoidmaw)
		case "untouchable":
			return victory && hitsTaken == 0
		case "speedrunner":
			return victory && duration < 120
		case "persistent":
			return stats.Wins >= 10
		case "veteran":
			return stats.Level >= 10
		case "elite":
			return stats.Level >= 25
		case "legend":
			return stats.Level >= 50
		case "survivor":
			return stats.Playtime >= 3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}

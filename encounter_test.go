package main

import (
	"sync"
	"testing"
)

// recorder is a Broadcaster that captures outbound traffic
type recorder struct {
	mu     sync.Mutex
	json   []Envelope
	binary [][]byte
}

func (r *recorder) SendJSON(msg interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if env, ok := msg.(Envelope); ok {
		r.json = append(r.json, env)
	}
}

func (r *recorder) SendBinary(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binary = append(r.binary, data)
}

func (r *recorder) lastJSON() (Envelope, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.json) == 0 {
		return Envelope{}, false
	}
	return r.json[len(r.json)-1], true
}

func newTestEncounter() (*Encounter, *recorder) {
	e := NewEncounter("e1", "Test Fight", BossSentinel, nil, nil)
	rec := &recorder{}
	e.AddHero("c1", "Hero", 0)
	e.SetClient("c1", rec)
	return e, rec
}

func TestEncounterLifecycle(t *testing.T) {
	e, _ := newTestEncounter()
	if e.phase != PhaseLobby {
		t.Fatalf("fresh encounter should sit in the lobby, got %d", e.phase)
	}
	if e.Started() {
		t.Error("lobby encounter is not started")
	}

	e.HandleReady("c1")
	if e.phase != PhaseCountdown {
		t.Fatalf("ready should start the countdown, got phase %d", e.phase)
	}
	if !e.Started() {
		t.Error("countdown counts as started")
	}

	// 3 seconds of countdown at the tick rate
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}
	if e.phase != PhaseFighting {
		t.Errorf("countdown should hand off to the fight, got phase %d", e.phase)
	}
}

func TestEncounterReadyOnlyFromLobby(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleReady("c1")
	e.countdown = 1.5
	e.HandleReady("c1")
	if e.countdown != 1.5 {
		t.Error("a second ready must not restart the countdown")
	}
}

func TestEncounterReadyIgnoresSpectator(t *testing.T) {
	e, _ := newTestEncounter()
	spec := &recorder{}
	e.SetClient("c2", spec)

	e.HandleReady("c2")
	if e.phase != PhaseLobby {
		t.Error("only the hero can ready up")
	}
}

func TestEncounterSecondHeroRefused(t *testing.T) {
	e, _ := newTestEncounter()
	if p := e.AddHero("c2", "Intruder", 0); p != nil {
		t.Error("encounter must refuse a second hero")
	}
	if e.heroClientID != "c1" {
		t.Error("original hero binding must survive the refused join")
	}
}

func TestEncounterInputClampsAndRoutes(t *testing.T) {
	e, _ := newTestEncounter()

	e.HandleInput("c1", ClientInput{MX: -500, MY: 99999, Fire: true})
	if e.hero.TargetX != 0 {
		t.Errorf("target x should clamp to the arena, got %f", e.hero.TargetX)
	}
	if e.hero.TargetY != ArenaHeight {
		t.Errorf("target y should clamp to the arena, got %f", e.hero.TargetY)
	}
	if !e.hero.Firing {
		t.Error("fire intent should pass through")
	}

	// Spectator input never reaches the hero
	e.HandleInput("c2", ClientInput{MX: 800, MY: 600})
	if e.hero.TargetX != 0 {
		t.Error("non-hero input must be ignored")
	}
}

func TestEncounterDodgeInputLatches(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleInput("c1", ClientInput{MX: 800, MY: 600, Dodge: true})
	e.HandleInput("c1", ClientInput{MX: 800, MY: 600, Dodge: false})
	if !e.hero.Dodging {
		t.Error("dodge intent latches until the next steer consumes it")
	}
}

func TestEncounterStepAdvancesGameTime(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	t0 := e.world.GameTime
	e.update()
	if e.world.GameTime <= t0 {
		t.Error("fighting ticks should advance game time")
	}
}

func TestEncounterHeroFires(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	e.HandleInput("c1", ClientInput{MX: e.hero.X, MY: e.hero.Y, Fire: true})
	e.update()
	if len(e.world.Projectiles) == 0 {
		t.Fatal("firing hero should spawn a projectile")
	}
	if e.hero.FireCD != FireCooldown {
		t.Errorf("firing should arm the cooldown, got %f", e.hero.FireCD)
	}
}

func TestEncounterDefeatReachesResult(t *testing.T) {
	e, rec := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	e.mu.Lock()
	e.world.GameTime = 30.0
	e.mu.Unlock()
	e.HandleInput("c1", ClientInput{MX: e.hero.X, MY: e.hero.Y})
	e.mu.Lock()
	e.hero.Health = 0.5
	e.mu.Unlock()
	// Park the boss on top of the hero so contact damage finishes the fight
	e.mu.Lock()
	e.world.Boss.X, e.world.Boss.Y = e.hero.X, e.hero.Y
	e.mu.Unlock()
	e.update()

	if e.phase != PhaseResult {
		t.Fatalf("lethal hit should move the encounter to the result phase, got %d", e.phase)
	}
	env, ok := rec.lastJSON()
	if !ok {
		t.Fatal("result message should be broadcast")
	}
	if env.T != MsgResult {
		t.Fatalf("expected %q message, got %q", MsgResult, env.T)
	}
	res, ok := env.Data.(ResultMsg)
	if !ok {
		t.Fatalf("unexpected result payload %T", env.Data)
	}
	if res.Victory {
		t.Error("hero death is a defeat")
	}
	if res.XP != EncounterXP(BossSentinel, false, res.Phase, res.Duration) {
		t.Error("result XP should match the payout formula")
	}
}

func TestEncounterRematchResetsWorld(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}
	e.mu.Lock()
	e.world.IsGameOver = true
	e.finishFightLocked()
	oldBossID := e.world.Boss.ID
	e.mu.Unlock()

	e.HandleRematch("c1")
	if e.phase != PhaseCountdown {
		t.Fatalf("rematch should restart the countdown, got phase %d", e.phase)
	}
	if e.hero.Health != PlayerMaxHP {
		t.Error("rematch hero should be at full health")
	}
	if e.world.Boss.Health != e.world.Boss.MaxHealth {
		t.Error("rematch boss should be at full health")
	}
	if e.world.Boss.ID == oldBossID {
		t.Error("rematch should build a fresh boss")
	}
	if e.world.GameTime != 0 {
		t.Error("rematch should zero the game clock")
	}
}

func TestEncounterRematchOnlyFromResult(t *testing.T) {
	e, _ := newTestEncounter()
	e.HandleRematch("c1")
	if e.phase != PhaseLobby {
		t.Error("rematch from the lobby must be ignored")
	}
}

func TestEncounterHeroLeavingForfeits(t *testing.T) {
	e, rec := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	e.RemoveClient("c1")
	if e.phase != PhaseResult {
		t.Fatalf("hero leaving mid-fight forfeits, got phase %d", e.phase)
	}
	env, ok := rec.lastJSON()
	if ok && env.T == MsgResult {
		if res, ok := env.Data.(ResultMsg); ok && res.Victory {
			t.Error("forfeit is a defeat")
		}
	}
}

func TestEncounterSpectatorLeavingHarmless(t *testing.T) {
	e, _ := newTestEncounter()
	spec := &recorder{}
	e.SetClient("c2", spec)
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	e.RemoveClient("c2")
	if e.phase != PhaseFighting {
		t.Error("spectator leaving must not end the fight")
	}
}

func TestEncounterClientCap(t *testing.T) {
	e, _ := newTestEncounter()
	for i := 0; i < maxClientsPerEnc*2; i++ {
		e.SetClient(GenerateID(4), &recorder{})
	}
	if e.ClientCount() > maxClientsPerEnc {
		t.Errorf("client count %d exceeds the cap %d", e.ClientCount(), maxClientsPerEnc)
	}
	if ok := e.SetClient("overflow", &recorder{}); ok {
		t.Error("join past the cap should be refused")
	}
}

func TestEncounterBuildState(t *testing.T) {
	e, _ := newTestEncounter()
	st := e.BuildState()
	if st.Lifecycle != int(PhaseLobby) {
		t.Errorf("lobby snapshot lifecycle %d", st.Lifecycle)
	}
	if st.Player.HP != PlayerMaxHP {
		t.Errorf("snapshot player hp %f", st.Player.HP)
	}
	if st.Boss.HP != st.Boss.MaxHP {
		t.Error("fresh boss snapshot should be at full health")
	}
	if st.Controller.Phase != 1 {
		t.Errorf("fresh controller snapshot phase %d", st.Controller.Phase)
	}
	if st.ArenaRadius != 0 {
		t.Error("sentinel has no collapsing arena")
	}
}

func TestEncounterBuildStateBeforeJoin(t *testing.T) {
	e := NewEncounter("e1", "Empty", BossSentinel, nil, nil)
	st := e.BuildState()
	if st.Lifecycle != int(PhaseLobby) {
		t.Error("empty encounter still reports the lobby lifecycle")
	}
}

func TestEncounterBroadcastEventsOnce(t *testing.T) {
	e, rec := newTestEncounter()
	e.HandleReady("c1")
	for i := 0; i < 3*TickRate+2; i++ {
		e.update()
	}

	e.mu.Lock()
	e.world.GameTime = 5.0
	ApplyPlayerDamage(e.world, 10, 100, 100, "beam")
	st1 := e.buildStateLocked()
	e.sentEvents = len(e.world.Events)
	st2 := e.buildStateLocked()
	e.mu.Unlock()

	if len(st1.Events) != 1 {
		t.Fatalf("first snapshot should carry the fresh event, got %d", len(st1.Events))
	}
	if len(st2.Events) != 0 {
		t.Errorf("events are delta-broadcast, second snapshot carries %d", len(st2.Events))
	}
	_ = rec
}

func TestEncounterXPPayout(t *testing.T) {
	base := BossCatalogMap[int(BossSentinel)].BaseXP

	if got := EncounterXP(BossSentinel, true, 4, 60); got != base+base/2 {
		t.Errorf("fast win should pay the speed bonus, got %d", got)
	}
	if got := EncounterXP(BossSentinel, true, 4, 300); got != base {
		t.Errorf("slow win pays base, got %d", got)
	}
	if got := EncounterXP(BossSentinel, false, 3, 60); got != base/4*2 {
		t.Errorf("defeat pays per phase reached, got %d", got)
	}
	if got := EncounterXP(BossSentinel, false, 1, 60); got != 0 {
		t.Errorf("phase 1 wipe pays nothing, got %d", got)
	}
}

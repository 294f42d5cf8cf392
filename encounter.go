package main

import (
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	CountdownTime = 3.0
	ResultLinger  = 12.0 // seconds the result screen stays before idle cleanup

	PickupSpawnInterval = 12.0
	maxPickupsAlive     = 3
	maxClientsPerEnc    = 12 // hero + spectators
)

// EncounterPhase is the lifecycle of one encounter session
type EncounterPhase int

const (
	PhaseLobby     EncounterPhase = 0
	PhaseCountdown EncounterPhase = 1
	PhaseFighting  EncounterPhase = 2
	PhaseResult    EncounterPhase = 3
)

// Broadcaster is the outbound side of a connected client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Encounter holds one boss fight session: the world, the boss controller,
// and the connected clients. The Run loop is the only mutator of the world;
// client handlers only touch input state under the encounter lock.
type Encounter struct {
	mu   sync.RWMutex
	ID   string
	Name string

	archetype BossArchetype
	phase     EncounterPhase
	countdown float64
	resultT   float64

	world *World
	ctrl  PhaseController
	hero  *Player

	heroClientID string
	heroDBID     int64 // authenticated account, 0 for guests

	clients map[string]Broadcaster

	tick    uint64
	running bool
	stop    chan struct{}

	grid     SpatialGrid
	queryBuf []EntityRef

	sentEvents  int // damage events already broadcast
	maxPhase    int
	damageTaken float64

	db        *DB
	analytics *Analytics
}

// NewEncounter creates an encounter session in the lobby phase
func NewEncounter(id, name string, archetype BossArchetype, db *DB, analytics *Analytics) *Encounter {
	return &Encounter{
		ID:        id,
		Name:      name,
		archetype: archetype,
		phase:     PhaseLobby,
		clients:   make(map[string]Broadcaster),
		stop:      make(chan struct{}),
		db:        db,
		analytics: analytics,
	}
}

// Run starts the encounter loop
func (e *Encounter) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.update()
		case <-e.stop:
			return
		}
	}
}

// Stop terminates the encounter loop
func (e *Encounter) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.running = false
		close(e.stop)
	}
}

// AddHero attaches the fighting player. Only one hero per encounter; a
// second join is refused.
func (e *Encounter) AddHero(clientID, name string, dbID int64) *Player {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hero != nil {
		return nil
	}
	e.hero = NewPlayer(GenerateID(4), name)
	e.heroClientID = clientID
	e.heroDBID = dbID
	e.resetWorld()
	return e.hero
}

// resetWorld builds a fresh world, boss and controller. Caller holds the lock.
func (e *Encounter) resetWorld() {
	hero := NewPlayer(e.hero.ID, e.hero.Name)
	e.hero = hero
	boss := NewBoss(GenerateID(4), e.archetype)
	e.world = NewWorld(hero, boss, float64(time.Now().UnixMilli())/1000.0)
	e.ctrl = NewBossController(e.archetype)
	e.sentEvents = 0
	e.maxPhase = 1
	e.damageTaken = 0
}

// SetClient associates a broadcaster with a client id
func (e *Encounter) SetClient(clientID string, b Broadcaster) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.clients) >= maxClientsPerEnc {
		return false
	}
	e.clients[clientID] = b
	return true
}

// RemoveClient detaches a client. If the hero leaves mid-fight the
// encounter is forfeit.
func (e *Encounter) RemoveClient(clientID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.clients, clientID)
	if clientID == e.heroClientID && e.phase == PhaseFighting {
		e.world.IsGameOver = true
		e.world.Victory = false
		e.finishFightLocked()
	}
}

// ClientCount returns the number of attached clients
func (e *Encounter) ClientCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.clients)
}

// Started reports whether the fight has begun
func (e *Encounter) Started() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phase >= PhaseCountdown
}

// HandleInput updates the hero's input state
func (e *Encounter) HandleInput(clientID string, input ClientInput) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if clientID != e.heroClientID || e.hero == nil {
		return
	}
	p := e.hero
	p.TargetX = Clamp(input.MX, 0, ArenaWidth)
	p.TargetY = Clamp(input.MY, 0, ArenaHeight)
	p.Firing = input.Fire
	if input.Dodge {
		p.Dodging = true
	}
}

// HandleReady starts the countdown from the lobby
func (e *Encounter) HandleReady(clientID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if clientID != e.heroClientID || e.phase != PhaseLobby {
		return
	}
	e.phase = PhaseCountdown
	e.countdown = CountdownTime
}

// HandleRematch resets the arena from the result screen
func (e *Encounter) HandleRematch(clientID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if clientID != e.heroClientID || e.phase != PhaseResult {
		return
	}
	e.resetWorld()
	e.phase = PhaseCountdown
	e.countdown = CountdownTime
}

// update runs one encounter tick
func (e *Encounter) update() {
	e.mu.Lock()
	defer e.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	e.tick++

	switch e.phase {
	case PhaseCountdown:
		e.countdown -= dt
		if e.countdown <= 0 {
			e.countdown = 0
			e.phase = PhaseFighting
			e.world.StartTime = float64(time.Now().UnixMilli()) / 1000.0
			if e.analytics != nil {
				e.analytics.Track(EvtEncounterStart, e.heroDBID, e.ID, encounterMeta(e.archetype))
			}
		}
	case PhaseFighting:
		e.step(dt)
	case PhaseResult:
		e.resultT -= dt
	}

	if e.tick%BroadcastEvery == 0 {
		e.broadcastState()
	}
}

// step advances the simulation by one frame. Within the frame the order is
// fixed: hero steering and fire intent, then the boss controller (phase
// logic, phase behavior, hazard lifecycle, boss movement), then world-level
// entities, then hero movement integration and contact resolution.
func (e *Encounter) step(dt float64) {
	w := e.world
	w.GameTime += dt
	p := w.Player

	p.Steer(w, dt)
	if p.CanFire() {
		w.AddProjectile(NewPlayerProjectile(p))
		p.FireCD = FireCooldown
	}

	UpdateBoss(e.ctrl, w, dt)
	if st := e.ctrl.State(); st.Phase > e.maxPhase {
		e.maxPhase = st.Phase
		if e.analytics != nil {
			e.analytics.Track(EvtBossPhase, e.heroDBID, e.ID, phaseMeta(st.Phase))
		}
	}

	// Minions move before the grid is rebuilt so projectile hits see
	// current positions
	minions := w.Minions[:0]
	for _, m := range w.Minions {
		m.Update(w, dt)
		if m.Alive {
			minions = append(minions, m)
		}
	}
	w.Minions = minions

	e.rebuildGrid()

	projectiles := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.Update(w, dt)
		if pr.Alive {
			e.resolveProjectile(pr)
		}
		if pr.Alive {
			projectiles = append(projectiles, pr)
		}
	}
	w.Projectiles = projectiles

	pickups := w.Pickups[:0]
	for _, pk := range w.Pickups {
		pk.Update(w, dt)
		if pk.Alive {
			pickups = append(pickups, pk)
		}
	}
	w.Pickups = pickups
	if e.ctrl.State().TriggerReady(w, "pickup_spawn", PickupSpawnInterval) &&
		len(w.Pickups) < maxPickupsAlive {
		w.Pickups = append(w.Pickups, NewPickup())
	}

	// Hero movement integrates last, after hazard damage and pulls have
	// settled this frame's positions
	p.X, p.Y = MoveActor(w, p.X, p.Y, p.VX, p.VY, p.Radius, dt)

	b := w.Boss
	if b.Alive() && p.Alive() && w.PlayerVulnerable() &&
		CheckCollision(b.X, b.Y, b.Radius, p.X, p.Y, p.Radius) {
		ApplyPlayerDamage(w, GetBossDef(b.Archetype).ContactDamage, p.X, p.Y, "contact")
		p.InvulnUntil = w.GameTime + InvulnDuration
	}

	if w.IsGameOver {
		e.finishFightLocked()
	}
}

// rebuildGrid reindexes minions and pylon hazards for broad-phase queries
func (e *Encounter) rebuildGrid() {
	e.grid.Clear()
	for i, m := range e.world.Minions {
		e.grid.InsertCircle(m.X, m.Y, m.Radius, EntityRef{Kind: 'm', Idx: i})
	}
	for i, h := range e.ctrl.State().Hazards {
		if h.Kind == HazardPylon {
			e.grid.InsertCircle(h.X, h.Y, h.Radius, EntityRef{Kind: 'h', Idx: i})
		}
	}
}

// resolveProjectile applies one projectile's collision for this frame
func (e *Encounter) resolveProjectile(pr *Projectile) {
	w := e.world
	if pr.Hostile {
		p := w.Player
		if p.Alive() && w.PlayerVulnerable() &&
			CheckCollision(pr.X, pr.Y, ProjectileRadius, p.X, p.Y, p.Radius) {
			ApplyPlayerDamage(w, pr.Damage, pr.X, pr.Y, "projectile")
			pr.Alive = false
		}
		return
	}

	b := w.Boss
	if b.Alive() && CheckCollision(pr.X, pr.Y, ProjectileRadius, b.X, b.Y, b.Radius) {
		ApplyBossDamage(w, pr.Damage)
		pr.Alive = false
		return
	}

	st := e.ctrl.State()
	e.queryBuf = e.grid.QueryBuf(pr.X, pr.Y, ProjectileRadius+MinionRadius, e.queryBuf[:0])
	for _, ref := range e.queryBuf {
		switch ref.Kind {
		case 'm':
			m := w.Minions[ref.Idx]
			if m.Alive && CheckCollision(pr.X, pr.Y, ProjectileRadius, m.X, m.Y, m.Radius) {
				m.TakeDamage(pr.Damage)
				pr.Alive = false
				return
			}
		case 'h':
			h := st.Hazards[ref.Idx]
			if h.Health > 0 && CheckCollision(pr.X, pr.Y, ProjectileRadius, h.X, h.Y, h.Radius) {
				DamageHazardByID(st.Hazards, h.ID, pr.Damage)
				pr.Alive = false
				return
			}
		}
	}
}

// finishFightLocked moves to the result phase and kicks off persistence.
// Caller holds the lock.
func (e *Encounter) finishFightLocked() {
	if e.phase != PhaseFighting {
		return
	}
	e.phase = PhaseResult
	e.resultT = ResultLinger

	w := e.world
	for _, ev := range w.Events {
		e.damageTaken += ev.Amount
	}

	result := ResultMsg{
		Victory:  w.Victory,
		Duration: round1(w.GameTime),
		Phase:    e.maxPhase,
		XP:       EncounterXP(e.archetype, w.Victory, e.maxPhase, w.GameTime),
	}
	e.sendAllLocked(Envelope{T: MsgResult, Data: result})

	if e.analytics != nil {
		e.analytics.Track(EvtEncounterEnd, e.heroDBID, e.ID, resultMeta(e.archetype, w.Victory, w.GameTime))
		if !w.Victory {
			e.analytics.Track(EvtPlayerDeath, e.heroDBID, e.ID, phaseMeta(e.maxPhase))
		}
	}

	if e.db != nil && e.heroDBID > 0 {
		// Copy everything persistence needs; the goroutine must not touch
		// live world state
		events := make([]DamageEvent, len(w.Events))
		copy(events, w.Events)
		heroClient := e.clients[e.heroClientID]
		go e.persistResult(result, events, heroClient)
	}
}

// persistResult writes the encounter outcome, damage log, stats and any
// newly unlocked achievements. Runs outside the tick loop.
func (e *Encounter) persistResult(result ResultMsg, events []DamageEvent, heroClient Broadcaster) {
	encID, err := e.db.RecordEncounter(e.heroDBID, int(e.archetype), result.Victory, result.Duration, result.Phase, result.XP)
	if err != nil {
		return
	}
	e.db.RecordDamageEvents(encID, events)

	before, _ := e.db.GetStats(e.heroDBID)
	_, newLevel, err := e.db.UpdateStatsAfterEncounter(e.heroDBID, result.Victory, result.Duration, result.XP)
	if err == nil && before != nil && newLevel > before.Level && e.analytics != nil {
		e.analytics.Track(EvtLevelUp, e.heroDBID, e.ID, levelMeta(newLevel))
	}

	unlocked := CheckAchievements(e.db, e.heroDBID, int(e.archetype), result.Victory, result.Duration, len(events))
	if len(unlocked) > 0 {
		if e.analytics != nil {
			for _, def := range unlocked {
				e.analytics.Track(EvtAchievement, e.heroDBID, e.ID, `{"id":"`+def.ID+`"}`)
			}
		}
		if heroClient != nil {
			heroClient.SendJSON(Envelope{T: MsgUnlocked, Data: unlocked})
		}
	}
}

// sendAllLocked sends a JSON message to every attached client. Caller
// holds the lock.
func (e *Encounter) sendAllLocked(msg Envelope) {
	for _, c := range e.clients {
		c.SendJSON(msg)
	}
}

// BuildState assembles the render snapshot of the encounter. Pure
// projection: calling it twice without a tick in between yields identical
// snapshots.
func (e *Encounter) BuildState() EncounterState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buildStateLocked()
}

func (e *Encounter) buildStateLocked() EncounterState {
	state := EncounterState{
		Tick:      e.tick,
		Lifecycle: int(e.phase),
		Countdown: round1(e.countdown),
	}
	w := e.world
	if w == nil {
		return state
	}
	state.GameTime = round1(w.GameTime)
	state.Player = w.Player.ToState(w)
	state.Boss = w.Boss.ToState()
	state.Controller = BuildControllerSnapshot(e.ctrl.State(), w.Boss)

	if shr, ok := e.ctrl.(interface{ Arena() *ShrinkingArena }); ok {
		if a := shr.Arena(); a.Active {
			state.ArenaRadius = round1(a.Radius)
		}
	}

	for _, pr := range w.Projectiles {
		state.Projectiles = append(state.Projectiles, pr.ToState())
	}
	for _, m := range w.Minions {
		state.Minions = append(state.Minions, m.ToState())
	}
	for _, pk := range w.Pickups {
		state.Pickups = append(state.Pickups, pk.ToState())
	}
	for _, ev := range w.Events[e.sentEvents:] {
		state.Events = append(state.Events, ev.ToState())
	}
	return state
}

// broadcastState sends the current snapshot to all clients as a msgpack
// binary frame. Caller holds the lock.
func (e *Encounter) broadcastState() {
	state := e.buildStateLocked()
	if e.world != nil {
		e.sentEvents = len(e.world.Events)
	}

	data, err := msgpack.Marshal(state)
	if err != nil {
		return
	}
	for _, c := range e.clients {
		c.SendBinary(data)
	}
}

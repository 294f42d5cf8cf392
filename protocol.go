package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"     // join an encounter as the hero
	MsgSpectate = "spectate" // join an encounter as a spectator
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create" // create an encounter session
	MsgList     = "list"   // list open sessions
	MsgCheck    = "check"  // check if a session exists
	MsgReady    = "ready"  // hero is ready, start the countdown
	MsgRematch  = "rematch"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // token re-auth
	MsgProfile  = "profile"
	MsgCatalog  = "catalog"
)

// Server -> Client message types
const (
	MsgState       = "state"
	MsgWelcome     = "welcome"
	MsgCreated     = "created"
	MsgJoined      = "joined"
	MsgSessions    = "sessions"
	MsgChecked     = "checked"
	MsgResult      = "result" // encounter finished, win or lose
	MsgError       = "error"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
	MsgCatalogData = "catalog_data"
	MsgUnlocked    = "unlocked" // achievements earned this encounter
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids
// double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is sent by the hero's client at input rate
type ClientInput struct {
	MX    float64 `json:"mx"` // pointer X (world coords)
	MY    float64 `json:"my"` // pointer Y (world coords)
	Fire  bool    `json:"fire"`
	Dodge bool    `json:"dodge"`
}

// CreateMsg asks for a new encounter session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Boss        int    `json:"boss"` // BossArchetype
}

// JoinMsg asks to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CheckMsg asks whether a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Boss    int    `json:"boss,omitempty"`
	Started bool   `json:"started,omitempty"`
}

// RegisterMsg / LoginMsg carry account credentials
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg carries a JWT for re-auth on reconnect
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	PlayerID int64  `json:"pid"`
	Username string `json:"u"`
	Token    string `json:"token,omitempty"`
}

// WelcomeMsg is sent to the hero when they join
type WelcomeMsg struct {
	ID   string `json:"id"`
	Boss int    `json:"boss"`
}

// SessionInfo is one row of the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Boss    int    `json:"boss"`
	Started bool   `json:"started"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// ProfileDataMsg carries an authenticated player's profile
type ProfileDataMsg struct {
	Username     string   `json:"u"`
	Level        int      `json:"lvl"`
	XP           int      `json:"xp"`
	XPNext       int      `json:"xpn"` // total XP needed for the next level
	Wins         int      `json:"w"`
	Losses       int      `json:"l"`
	Playtime     float64  `json:"pt"`
	BestTime     float64  `json:"bt"`
	Achievements []string `json:"ach,omitempty"`
}

// ResultMsg reports the encounter outcome
type ResultMsg struct {
	Victory  bool    `json:"v"`
	Duration float64 `json:"dur"`
	Phase    int     `json:"ph"` // deepest boss phase reached
	XP       int     `json:"xp"`
}

// --- snapshot states, broadcast as msgpack binary frames ---

// PlayerState is the hero's slice of the snapshot
type PlayerState struct {
	ID     string  `json:"id" msgpack:"id"`
	Name   string  `json:"n" msgpack:"n"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	R      float64 `json:"r" msgpack:"r"`
	HP     float64 `json:"hp" msgpack:"hp"`
	MaxHP  float64 `json:"mhp" msgpack:"mhp"`
	Invuln bool    `json:"inv,omitempty" msgpack:"inv"`
}

// BossState is the boss's slice of the snapshot
type BossState struct {
	ID     string  `json:"id" msgpack:"id"`
	Arch   int     `json:"arch" msgpack:"arch"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	HP     float64 `json:"hp" msgpack:"hp"`
	MaxHP  float64 `json:"mhp" msgpack:"mhp"`
	Invuln bool    `json:"inv,omitempty" msgpack:"inv"`
}

// HazardState is one hazard in the snapshot
type HazardState struct {
	ID     string  `json:"id" msgpack:"id"`
	Kind   int     `json:"k" msgpack:"k"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Angle  float64 `json:"a,omitempty" msgpack:"a"`
	Length float64 `json:"l,omitempty" msgpack:"l"`
	Radius float64 `json:"rad,omitempty" msgpack:"rad"`
	Stage  int     `json:"st" msgpack:"st"`
	HP     float64 `json:"hp,omitempty" msgpack:"hp"`
	MaxHP  float64 `json:"mhp,omitempty" msgpack:"mhp"`
}

// ProjectileState is one bullet in the snapshot
type ProjectileState struct {
	ID      string  `json:"id" msgpack:"id"`
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	R       float64 `json:"r" msgpack:"r"`
	Hostile bool    `json:"h,omitempty" msgpack:"h"`
}

// MinionState is one add in the snapshot
type MinionState struct {
	ID    string  `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	HP    float64 `json:"hp" msgpack:"hp"`
	MaxHP float64 `json:"mhp" msgpack:"mhp"`
}

// PickupState is one heal orb in the snapshot
type PickupState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// DamageEventState is one hit for the presentation layer
type DamageEventState struct {
	Kind   string  `json:"k" msgpack:"k"`
	Amount float64 `json:"amt" msgpack:"amt"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	TS     float64 `json:"ts" msgpack:"ts"`
}

// EncounterState is the full snapshot broadcast each broadcast tick
type EncounterState struct {
	Tick        uint64             `json:"tick" msgpack:"tick"`
	Lifecycle   int                `json:"lc" msgpack:"lc"` // EncounterPhase
	Countdown   float64            `json:"cd,omitempty" msgpack:"cd"`
	GameTime    float64            `json:"gt" msgpack:"gt"`
	Player      PlayerState        `json:"p" msgpack:"p"`
	Boss        BossState          `json:"b" msgpack:"b"`
	Controller  ControllerSnapshot `json:"c" msgpack:"c"`
	ArenaRadius float64            `json:"ar,omitempty" msgpack:"ar"` // 0 when no collapse
	Projectiles []ProjectileState  `json:"pr,omitempty" msgpack:"pr"`
	Minions     []MinionState      `json:"m,omitempty" msgpack:"m"`
	Pickups     []PickupState      `json:"pk,omitempty" msgpack:"pk"`
	Events      []DamageEventState `json:"ev,omitempty" msgpack:"ev"`
}

// ToState converts a hazard to its snapshot form
func (h *Hazard) ToState() HazardState {
	return HazardState{
		ID:     h.ID,
		Kind:   int(h.Kind),
		X:      round1(h.X),
		Y:      round1(h.Y),
		Angle:  round1(h.Angle),
		Length: h.Length,
		Radius: h.Radius,
		Stage:  int(h.Stage),
		HP:     h.Health,
		MaxHP:  h.MaxHealth,
	}
}

// ToState converts the hero to its snapshot form
func (p *Player) ToState(w *World) PlayerState {
	return PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		X:      round1(p.X),
		Y:      round1(p.Y),
		R:      round1(p.Rotation),
		HP:     round1(p.Health),
		MaxHP:  p.MaxHealth,
		Invuln: p.InvulnUntil >= w.GameTime,
	}
}

// ToState converts the boss to its snapshot form
func (b *Boss) ToState() BossState {
	return BossState{
		ID:     b.ID,
		Arch:   int(b.Archetype),
		X:      round1(b.X),
		Y:      round1(b.Y),
		HP:     round1(b.Health),
		MaxHP:  b.MaxHealth,
		Invuln: b.Invulnerable,
	}
}

// ToState converts a projectile to its snapshot form
func (p *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:      p.ID,
		X:       round1(p.X),
		Y:       round1(p.Y),
		R:       round1(p.Rotation),
		Hostile: p.Hostile,
	}
}

// ToState converts a minion to its snapshot form
func (m *Minion) ToState() MinionState {
	return MinionState{
		ID:    m.ID,
		X:     round1(m.X),
		Y:     round1(m.Y),
		HP:    round1(m.Health),
		MaxHP: m.MaxHealth,
	}
}

// ToState converts a pickup to its snapshot form
func (pk *Pickup) ToState() PickupState {
	return PickupState{ID: pk.ID, X: round1(pk.X), Y: round1(pk.Y)}
}

// ToState converts a damage event to its snapshot form
func (e DamageEvent) ToState() DamageEventState {
	return DamageEventState{
		Kind:   e.Kind,
		Amount: round1(e.Amount),
		X:      round1(e.X),
		Y:      round1(e.Y),
		TS:     e.Timestamp,
	}
}

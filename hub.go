package main

import (
	"sync"
	"time"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000

	idleSweepPeriod = time.Minute
)

// Hub manages all connected clients and routes them to sessions
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	sessions   *SessionManager

	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int

	db        *DB
	auth      *Auth
	analytics *Analytics

	// Online auth users: authPlayerID -> *Client
	onlineMu    sync.RWMutex
	onlineUsers map[int64]*Client
}

// NewHub creates a new Hub
func NewHub(db *DB, analytics *Analytics) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client, 64),
		unregister:  make(chan *Client, 64),
		sessions:    NewSessionManager(db, analytics),
		ipConns:     make(map[string]int),
		db:          db,
		auth:        NewAuth(db),
		analytics:   analytics,
		onlineUsers: make(map[int64]*Client),
	}
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	h.ipConns[ip]++
	h.totalConns++
	n := h.totalConns
	h.connMu.Unlock()
	if h.analytics != nil {
		h.analytics.SetConcurrentPeers(n)
	}
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
	n := h.totalConns
	h.connMu.Unlock()
	if h.analytics != nil {
		h.analytics.SetConcurrentPeers(n)
	}
}

// Run processes register/unregister events and sweeps idle sessions
func (h *Hub) Run() {
	sweep := time.NewTicker(idleSweepPeriod)
	defer sweep.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			if client.authPlayerID != 0 {
				h.SetOffline(client.authPlayerID)
			}
			if client.sessionID != "" {
				h.sessions.RemoveClient(client.sessionID, client.clientID)
			}

		case <-sweep.C:
			h.sessions.CleanupIdle()
		}
	}
}

// SetOnline marks an authenticated user as online
func (h *Hub) SetOnline(playerID int64, client *Client) {
	h.onlineMu.Lock()
	defer h.onlineMu.Unlock()
	h.onlineUsers[playerID] = client
}

// SetOffline removes an authenticated user from online tracking
func (h *Hub) SetOffline(playerID int64) {
	h.onlineMu.Lock()
	defer h.onlineMu.Unlock()
	delete(h.onlineUsers, playerID)
}

// IsOnline checks if a player is online
func (h *Hub) IsOnline(playerID int64) bool {
	h.onlineMu.RLock()
	defer h.onlineMu.RUnlock()
	_, ok := h.onlineUsers[playerID]
	return ok
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL         = 7 * 24 * time.Hour
	bcryptCost       = 12
	minPasswordLen   = 4
	minUsernameLen   = 2
	maxUsernameLen   = 16
	loginRateWindow  = 60 * time.Second
	maxLoginAttempts = 10
)

// tokenClaims is the JWT payload issued on register/login. The short field
// names are part of the client protocol.
type tokenClaims struct {
	PlayerID int64  `json:"pid"`
	Username string `json:"usr"`
	jwt.RegisteredClaims
}

// Auth issues and validates account credentials
type Auth struct {
	db     *DB
	secret []byte
	logins *loginLimiter
}

// NewAuth creates an Auth backed by the given database
func NewAuth(db *DB) *Auth {
	return &Auth{
		db:     db,
		secret: loadOrCreateSecret(db),
		logins: newLoginLimiter(),
	}
}

// loadOrCreateSecret loads the JWT signing secret from the database, or
// generates and persists a new one if none exists. Persisting it keeps
// tokens valid across server restarts.
func loadOrCreateSecret(db *DB) []byte {
	if db != nil {
		if h := db.GetSetting("jwt_secret"); h != "" {
			if b, err := hex.DecodeString(h); err == nil && len(b) == 32 {
				return b
			}
		}
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("failed to generate JWT secret: " + err.Error())
	}
	if db != nil {
		if err := db.SetSetting("jwt_secret", hex.EncodeToString(secret)); err != nil {
			log.Printf("warning: could not persist JWT secret: %v", err)
		}
	}
	return secret
}

// validateCredentials checks the registration constraints on a
// username/password pair
func validateCredentials(username, password string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("username must be %d-%d characters", minUsernameLen, maxUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// Register creates a new account and returns its id and a signed token
func (a *Auth) Register(username, password string) (int64, string, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return 0, "", err
	}

	exists, err := a.db.UsernameExists(username)
	if err != nil {
		return 0, "", fmt.Errorf("database error")
	}
	if exists {
		return 0, "", fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}

	id, err := a.db.CreatePlayer(username, string(hash))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create account")
	}

	token, err := a.generateToken(id, username)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}

	return id, token, nil
}

// Login authenticates a user and returns a fresh token. Attempts are
// rate-limited per source IP.
func (a *Auth) Login(username, password, ip string) (int64, string, error) {
	if !a.logins.allow(ip) {
		return 0, "", fmt.Errorf("too many login attempts, try again later")
	}

	player, err := a.db.GetPlayerByUsername(username)
	if err != nil {
		return 0, "", fmt.Errorf("database error")
	}
	if player == nil || player.PassHash == "" {
		return 0, "", fmt.Errorf("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PassHash), []byte(password)); err != nil {
		return 0, "", fmt.Errorf("invalid username or password")
	}

	token, err := a.generateToken(player.ID, player.Username)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}

	return player.ID, token, nil
}

// ValidateToken verifies a token's signature and expiry and returns the
// account it was issued for
func (a *Auth) ValidateToken(tokenStr string) (int64, string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return 0, "", err
	}
	if !token.Valid || claims.PlayerID == 0 || claims.Username == "" {
		return 0, "", fmt.Errorf("invalid token")
	}
	return claims.PlayerID, claims.Username, nil
}

func (a *Auth) generateToken(playerID int64, username string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		PlayerID: playerID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// loginLimiter throttles password attempts per source IP over a fixed
// window. Each check counts against the window, successful or not.
type loginLimiter struct {
	mu      sync.Mutex
	windows map[string]*loginWindow
}

type loginWindow struct {
	attempts int
	resetAt  time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{windows: make(map[string]*loginWindow)}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.resetAt) {
		l.windows[ip] = &loginWindow{attempts: 1, resetAt: now.Add(loginRateWindow)}
		return true
	}
	w.attempts++
	return w.attempts <= maxLoginAttempts
}

// GenerateGuestName creates a unique guest name like "Hero_a3f2"
func GenerateGuestName() string {
	b := make([]byte, 3)
	rand.Read(b)
	return "Hero_" + hex.EncodeToString(b)
}

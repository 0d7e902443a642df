package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/shared"
)

// KeyValueStore is the slice of the local store the token manager needs.
type KeyValueStore interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
	DeleteSetting(keys ...string) error
}

// TokenService owns the persisted session: bearer token and cached user.
// The token is sealed with a per-install key before it touches disk. There is
// no expiry check and no server round-trip here; presence of a token is the
// whole authentication state.
type TokenService struct {
	context.DefaultService

	store  KeyValueStore
	secret [32]byte
}

const TOKEN_SVC = "token_svc"

func (svc TokenService) Id() string {
	return TOKEN_SVC
}

func (svc *TokenService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *TokenService) Start() error {
	sqlSvc := svc.Service(SQLITE_SVC).(*SqliteService)
	svc.store = sqlSvc

	return svc.loadOrCreateKey(filepath.Join(sqlSvc.StateDir(), "device.key"))
}

func (svc *TokenService) loadOrCreateKey(path string) error {
	raw, err := os.ReadFile(path)
	if err == nil && len(raw) == len(svc.secret) {
		copy(svc.secret[:], raw)
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if _, err := rand.Read(svc.secret[:]); err != nil {
		return err
	}
	return os.WriteFile(path, svc.secret[:], 0o600)
}

// SetToken persists the bearer token. No validation of token shape.
func (svc *TokenService) SetToken(token string) error {
	sealed, err := svc.seal(token)
	if err != nil {
		return shared.NewInternalError(err, "Failed to seal token")
	}
	return svc.store.SetSetting(shared.KeyAuthToken, sealed)
}

// Token returns the stored token or "". It never fails; an unreadable or
// corrupt entry behaves like an absent one.
func (svc *TokenService) Token() string {
	sealed, err := svc.store.GetSetting(shared.KeyAuthToken)
	if err != nil || sealed == "" {
		return ""
	}

	token, err := svc.open(sealed)
	if err != nil {
		log.WithError(err).Warn("Stored token could not be unsealed, treating as absent")
		return ""
	}
	return token
}

// IsAuthenticated reports whether a token is present.
func (svc *TokenService) IsAuthenticated() bool {
	return svc.Token() != ""
}

// Clear removes the token and the cached user. This is the logout boundary.
func (svc *TokenService) Clear() error {
	return svc.store.DeleteSetting(shared.KeyAuthToken, shared.KeyCachedUser)
}

// ==================== CACHED USER ====================

func (svc *TokenService) SetUser(user *dto.User) error {
	raw, err := sonic.Marshal(user)
	if err != nil {
		return shared.NewInternalError(err, "Failed to serialize user")
	}
	return svc.store.SetSetting(shared.KeyCachedUser, string(raw))
}

// User returns the cached session user, or nil when absent or unreadable.
func (svc *TokenService) User() *dto.User {
	raw, err := svc.store.GetSetting(shared.KeyCachedUser)
	if err != nil || raw == "" {
		return nil
	}

	var user dto.User
	if err := sonic.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// ==================== THEME PREFERENCE ====================

func (svc *TokenService) SetTheme(theme string) error {
	return svc.store.SetSetting(shared.KeyTheme, theme)
}

func (svc *TokenService) Theme() string {
	theme, err := svc.store.GetSetting(shared.KeyTheme)
	if err != nil || theme == "" {
		return shared.ThemeLight
	}
	return theme
}

// ==================== SEALING ====================

func (svc *TokenService) seal(plaintext string) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &svc.secret)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (svc *TokenService) open(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if len(raw) < 24 {
		return "", errors.New("sealed token too short")
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, &svc.secret)
	if !ok {
		return "", errors.New("sealed token failed to open")
	}
	return string(plaintext), nil
}

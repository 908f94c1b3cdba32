package authentication

// KeyString keeps the dormctl session token in the OS keyring, on the client side.
import (
	"encoding/json"
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "dormctl"
	tokenKey    = "session"
)

// ErrNotLoggedIn is returned when no usable session is stored
var ErrNotLoggedIn = errors.New("not logged in, run `dormctl auth login` first")

type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the token is past its expiry at now
func (c *StoredCredentials) Expired(now time.Time) bool {
	return c.ExpiresAt > 0 && now.Unix() >= c.ExpiresAt
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

// GetTokens loads the stored session. A missing or expired one is ErrNotLoggedIn.
func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	if creds.AccessToken == "" || creds.Expired(time.Now()) {
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

func DeleteTokens() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

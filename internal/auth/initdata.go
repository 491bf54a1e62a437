package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// InitDataUser is the user object embedded in Telegram WebApp initData.
type InitDataUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Language  string `json:"language_code"`
}

// ValidateInitData verifies the initData signature per the Telegram WebApp
// scheme: secret = HMAC-SHA256(botToken) keyed by "WebAppData"; the signed
// text is the sorted key=value pairs joined by newlines, excluding "hash".
// An empty bot token never validates; permissive mode is the caller's call.
func ValidateInitData(initData, botToken string) bool {
	if botToken == "" {
		return false
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return false
	}

	suppliedHash := values.Get("hash")
	if suppliedHash == "" {
		return false
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	dataCheckString := strings.Join(pairs, "\n")

	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	secretKey := secretMac.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	calculated := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(calculated), []byte(suppliedHash))
}

// ParseInitDataUser extracts the embedded user profile. Returns nil when the
// payload has no parsable user; malformed input never errors.
func ParseInitDataUser(initData string) *InitDataUser {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil
	}

	var user InitDataUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil
	}
	if user.ID == 0 {
		return nil
	}
	return &user
}

package entities

import (
	"strings"
	"unicode/utf8"

	"raidcrew/raidtracker/internal/constants"
)

// Identity is the signed-in user. The JSON layout is what gets persisted for the client,
// so the keys must stay stable.
type Identity struct {
	ID                 string         `json:"id"`
	Username           string         `json:"username"`
	Role               constants.Role `json:"role"`
	Avatar             string         `json:"avatar"`
	ConnectedX         bool           `json:"connectedX"`
	XAccessToken       string         `json:"xAccessToken,omitempty"`
	XAccessTokenSecret string         `json:"xAccessTokenSecret,omitempty"`
	DisplayName        string         `json:"displayName,omitempty"`
	Verified           bool           `json:"verified,omitempty"`
}

// Handle is the @-prefixed name raider records are filed under.
func (i *Identity) Handle() string {
	return "@" + strings.TrimPrefix(i.Username, "@")
}

// Initial is the avatar fallback letter.
func (i *Identity) Initial() string {
	name := strings.TrimPrefix(i.Username, "@")
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

func (i *Identity) IsAdmin() bool  { return i.Role == constants.RoleAdmin }
func (i *Identity) IsRaider() bool { return i.Role == constants.RoleRaider }

package discord

import (
	"encoding/json"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// primaryGuild is the slice of the user object describing the server tag the
// user currently displays.
type primaryGuild struct {
	IdentityEnabled bool   `json:"identity_enabled"`
	IdentityGuildID string `json:"identity_guild_id"`
}

type taggedUser struct {
	PrimaryGuild *primaryGuild `json:"primary_guild"`
}

// TagChecker resolves whether a user displays a guild's server tag. Lookups
// go through the REST API, so results are cached per user for a short TTL.
type TagChecker struct {
	session *discordgo.Session
	cache   *expirable.LRU[string, primaryGuild]
}

// NewTagChecker creates a tag checker backed by the given session.
func NewTagChecker(s *discordgo.Session) *TagChecker {
	return &TagChecker{
		session: s,
		cache:   expirable.NewLRU[string, primaryGuild](TagCacheSize, nil, TagCacheTTL),
	}
}

// HasServerTag reports whether userID currently displays guildID's server
// tag. Lookup failures fail open to no tag so accrual never blocks on the
// REST API.
func (t *TagChecker) HasServerTag(userID, guildID string) bool {
	if pg, ok := t.cache.Get(userID); ok {
		return pg.IdentityEnabled && pg.IdentityGuildID == guildID
	}

	body, err := t.session.Request("GET", discordgo.EndpointUser(userID), nil)
	if err != nil {
		slog.Warn(LogMsgTagLookupFailed, "user_id", userID, "error", err)
		return false
	}

	pg, err := parsePrimaryGuild(body)
	if err != nil {
		slog.Warn(LogMsgTagLookupFailed, "user_id", userID, "error", err)
		return false
	}

	t.cache.Add(userID, pg)
	return pg.IdentityEnabled && pg.IdentityGuildID == guildID
}

// parsePrimaryGuild extracts the primary guild fields from a raw user
// payload. A user without a server tag yields the zero value.
func parsePrimaryGuild(body []byte) (primaryGuild, error) {
	var u taggedUser
	if err := json.Unmarshal(body, &u); err != nil {
		return primaryGuild{}, err
	}
	if u.PrimaryGuild == nil {
		return primaryGuild{}, nil
	}
	return *u.PrimaryGuild, nil
}

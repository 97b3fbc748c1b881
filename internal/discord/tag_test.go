package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimaryGuild(t *testing.T) {
	tests := []struct {
		name string
		body string
		want primaryGuild
	}{
		{
			name: "tag displayed",
			body: `{"id":"1","primary_guild":{"identity_enabled":true,"identity_guild_id":"guild-1"}}`,
			want: primaryGuild{IdentityEnabled: true, IdentityGuildID: "guild-1"},
		},
		{
			name: "tag set but hidden",
			body: `{"id":"1","primary_guild":{"identity_enabled":false,"identity_guild_id":"guild-1"}}`,
			want: primaryGuild{IdentityEnabled: false, IdentityGuildID: "guild-1"},
		},
		{
			name: "no primary guild field",
			body: `{"id":"1","username":"trapper"}`,
			want: primaryGuild{},
		},
		{
			name: "null primary guild",
			body: `{"id":"1","primary_guild":null}`,
			want: primaryGuild{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrimaryGuild([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrimaryGuild_MalformedJSON(t *testing.T) {
	_, err := parsePrimaryGuild([]byte(`{not json`))
	assert.Error(t, err)
}

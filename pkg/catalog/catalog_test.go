package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())
	assert.Len(t, c.Services(), 16)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		displayName string
		wantID      string
		wantOK      bool
	}{
		{displayName: "OpenAI", wantID: "openai", wantOK: true},
		{displayName: "openai", wantID: "openai", wantOK: true},
		{displayName: "Anthropic", wantID: "anthropic", wantOK: true},
		{displayName: "Anthropic Claude", wantID: "anthropic", wantOK: true},
		{displayName: "Google Maps", wantID: "google-cloud", wantOK: true},
		{displayName: "Google", wantID: "google-cloud", wantOK: true},
		{displayName: "GitLab", wantID: "gitlab", wantOK: true},
		{displayName: "MCP Router", wantID: "mcp-router", wantOK: true},
		{displayName: " Slack ", wantID: "slack", wantOK: true},
		{displayName: "Todo2", wantOK: false},
		{displayName: "Generic", wantOK: false},
		{displayName: "", wantOK: false},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.displayName, func(t *testing.T) {
			s, ok := c.Resolve(tt.displayName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, s.ID)
		})
	}
}

func TestByIDAndKeyName(t *testing.T) {
	c := Default()

	s, ok := c.ByID("aws")
	require.True(t, ok)
	assert.Equal(t, "AWS_ACCESS_KEY_ID", s.KeyName)
	assert.Equal(t, "cloud", s.Category)

	s, ok = c.ByKeyName("twilio_auth_token")
	require.True(t, ok)
	assert.Equal(t, "twilio", s.ID)

	_, ok = c.ByID("unknown")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"ai", "development", "other", "crypto", "social", "cloud"}, c.Categories())

	var ids []string
	for _, s := range c.ByCategory("crypto") {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"binance", "coinbase"}, ids)
	assert.Empty(t, c.ByCategory("unknown"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty id", data: "services:\n  - name: X\n", wantErr: ErrEmptyID},
		{name: "duplicate id", data: "services:\n  - id: a\n  - id: a\n", wantErr: ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load([]byte("services: [unterminated"))
	assert.Error(t, err)
}

func TestServicesIsACopy(t *testing.T) {
	c := Default()
	services := c.Services()
	services[0].ID = "mutated"

	s, ok := c.ByID("openai")
	require.True(t, ok)
	assert.Equal(t, "openai", s.ID)
}

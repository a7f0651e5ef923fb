package gauth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/kodiarasan/sheetflow/internal/common"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  Config{ClientID: "id", ClientSecret: "secret", TokenFile: "/tmp/token.json"},
			wantErr: false,
		},
		{
			name:    "missing client id",
			config:  Config{ClientSecret: "secret"},
			wantErr: true,
		},
		{
			name:    "missing client secret",
			config:  Config{ClientID: "id"},
			wantErr: true,
		},
		{
			name:    "token file optional",
			config:  Config{ClientID: "id", ClientSecret: "secret"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrMissingCredentials)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveLoadToken_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, SaveToken(path, want))

	got, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.Equal(t, want.TokenType, got.TokenType)
	assert.True(t, want.Expiry.Equal(got.Expiry))
}

func TestLoadToken_Missing(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestProvider_Scopes(t *testing.T) {
	p, err := NewProvider(Config{ClientID: "id", ClientSecret: "secret"})
	require.NoError(t, err)

	cfg := p.oauthConfig()
	assert.Equal(t, Scopes, cfg.Scopes)
	assert.Contains(t, cfg.Scopes, "https://www.googleapis.com/auth/drive")
	assert.Contains(t, cfg.Scopes, "https://www.googleapis.com/auth/spreadsheets")
}

func TestProvider_Authenticate(t *testing.T) {
	// Exercising the interactive flow needs a browser and Google's endpoints.
	t.Skip("Requires interactive OAuth consent")
}

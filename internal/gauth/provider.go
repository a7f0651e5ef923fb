// Package gauth provides the Google credential lifecycle: load a cached
// token, refresh it when stale, run the interactive consent flow when there
// is nothing to refresh, and persist whatever it ends up with.
package gauth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/kodiarasan/sheetflow/internal/common"
)

// Scopes covers everything the pipeline touches: Drive for the upload,
// Spreadsheets for the layout mutations.
var Scopes = []string{drive.DriveScope, sheets.SpreadsheetsScope}

// Config holds the OAuth2 client configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string // where the token is cached between runs
}

// Validate checks that an interactive flow could succeed with this config.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: client ID and secret are required", common.ErrMissingCredentials)
	}
	return nil
}

// Provider produces valid, refreshed Google credentials.
type Provider struct {
	config Config
}

// NewProvider creates a credential provider.
func NewProvider(config Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Provider{config: config}, nil
}

func (p *Provider) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost:8080/callback",
		Scopes:       Scopes,
	}
}

// Token returns a valid token, walking the lifecycle: cached, refreshed,
// or freshly authorized.
func (p *Provider) Token(ctx context.Context) (*oauth2.Token, error) {
	if p.config.TokenFile != "" {
		token, err := LoadToken(p.config.TokenFile)
		if err == nil {
			if token.Valid() {
				return token, nil
			}
			if token.RefreshToken != "" {
				return p.refresh(ctx, token)
			}
			slog.Info("Cached token expired without refresh token, re-authenticating")
		} else {
			slog.Info("No cached token found, starting OAuth2 flow", "file", p.config.TokenFile)
		}
	}

	return p.Authenticate(ctx)
}

// Client returns an HTTP client that injects the credential on every request.
func (p *Provider) Client(ctx context.Context) (*http.Client, error) {
	token, err := p.Token(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, p.oauthConfig().TokenSource(ctx, token)), nil
}

// refresh exchanges the refresh token for a new access token and persists it.
func (p *Provider) refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	slog.Info("Token expired, refreshing...")

	newToken, err := p.oauthConfig().TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTokenExpired, err)
	}

	if p.config.TokenFile != "" {
		if err := SaveToken(p.config.TokenFile, newToken); err != nil {
			slog.Warn("Failed to save refreshed token", "error", err)
		}
	}

	return newToken, nil
}

// Authenticate runs the interactive consent flow and persists the result.
func (p *Provider) Authenticate(ctx context.Context) (*oauth2.Token, error) {
	oauthConfig := p.oauthConfig()

	codeChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	mux := http.NewServeMux()
	server := &http.Server{Addr: ":8080", Handler: mux}

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errorChan <- fmt.Errorf("%w: no authorization code received", common.ErrConsentDenied)
			_, _ = fmt.Fprintf(w, `<html><body>
				<h1>Authentication Failed</h1>
				<p>No authorization code received. Please try again.</p>
				<script>window.setTimeout(function(){window.close();}, 3000);</script>
			</body></html>`)
			return
		}

		codeChan <- code
		_, _ = fmt.Fprintf(w, `<html><body>
			<h1>Authentication Successful!</h1>
			<p>You can close this window and return to the terminal.</p>
			<script>window.setTimeout(function(){window.close();}, 3000);</script>
		</body></html>`)
	})

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errorChan <- fmt.Errorf("failed to start callback server: %w", err)
		}
	}()

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	slog.Info("🔐 Google Authentication Required")
	slog.Info("Please visit this URL to authenticate", "url", authURL)
	slog.Info("Waiting for authentication...")

	var authCode string
	select {
	case authCode = <-codeChan:
		slog.Info("Received authorization code")
	case err := <-errorChan:
		_ = server.Shutdown(ctx)
		return nil, err
	case <-time.After(5 * time.Minute):
		_ = server.Shutdown(ctx)
		return nil, fmt.Errorf("%w: no response received within 5 minutes", common.ErrConsentDenied)
	}

	if err := server.Shutdown(ctx); err != nil {
		slog.Warn("Error shutting down callback server", "error", err)
	}

	token, err := oauthConfig.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if p.config.TokenFile != "" {
		if err := SaveToken(p.config.TokenFile, token); err != nil {
			slog.Warn("Failed to save token to file", "error", err, "file", p.config.TokenFile)
		} else {
			slog.Info("Token saved successfully", "file", p.config.TokenFile)
		}
	}

	return token, nil
}

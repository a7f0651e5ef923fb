package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kodiarasan/sheetflow/internal/cli"
	"github.com/kodiarasan/sheetflow/internal/config"
	"github.com/kodiarasan/sheetflow/internal/gauth"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google",
		Long: `Authenticate with Google Drive and Sheets using OAuth2.

This command will:
1. Open your browser to authenticate with Google
2. Save the token for future use

You'll need to run this once before building a tracker. Subsequent runs
refresh the cached token automatically.`,
		RunE: runAuth,
	}

	cmd.Flags().String("client-id", "", "OAuth2 Client ID (overrides config)")
	cmd.Flags().String("client-secret", "", "OAuth2 Client Secret (overrides config)")

	return cmd
}

func runAuth(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	authConfig, err := config.LoadAuthConfig()
	if err != nil {
		// Flag overrides may still make the config whole.
		authConfig = gauth.Config{TokenFile: config.DefaultTokenFile()}
	}

	if v, _ := cmd.Flags().GetString("client-id"); v != "" {
		authConfig.ClientID = v
	}
	if v, _ := cmd.Flags().GetString("client-secret"); v != "" {
		authConfig.ClientSecret = v
	}

	provider, err := gauth.NewProvider(authConfig)
	if err != nil {
		return fmt.Errorf("create a Google Cloud OAuth2 client (Desktop app) and set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET: %w", err)
	}

	slog.Info("Starting Google OAuth2 flow")
	if _, err := provider.Authenticate(ctx); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Authenticated with Google"))
	fmt.Println(cli.FormatInfo("Token saved to " + authConfig.TokenFile))
	return nil
}

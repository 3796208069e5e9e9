package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-docx/internal/config"
	"github.com/jonathan/resume-docx/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the document endpoints",
	Long:  "Signs a token with JWT_SECRET for a client. A new client ID is generated unless --client-id is given.",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID to embed in the token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		if clientID, err = uuid.Parse(tokenClientID); err != nil {
			return fmt.Errorf("invalid client-id: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(clientID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

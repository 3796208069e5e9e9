package main

import (
	"fmt"

	"github.com/jonathan/resume-docx/internal/config"
	"github.com/jonathan/resume-docx/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes POST /generate (returns a .docx attachment),
POST /preview (returns the block tree as JSON) and GET /health.

When require_auth is set (or REQUIRE_AUTH=true), document endpoints need a bearer
token signed with JWT_SECRET; see the token command.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: PORT or 5000)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	srvCfg := server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		OutputFilename: cfg.OutputFilename,
	}
	if cfg.RequireAuth {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return fmt.Errorf("failed to create JWT config: %w", err)
		}
		srvCfg.JWT = jwtCfg
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

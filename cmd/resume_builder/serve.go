package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the editor server",
		Long:  `Start an HTTP server that serves the editor and exposes the resume editing API.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	sessionConfig, err := config.NewSessionConfig()
	if err != nil {
		return fmt.Errorf("failed to create session token config: %w", err)
	}
	if sessionConfig.Ephemeral {
		log.Printf("SESSION_SECRET not set; using a generated secret, tokens will not survive a restart")
	}

	renderer, err := rendering.Default()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	provider, closeProvider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeProvider(); err != nil {
			log.Printf("Error closing suggestion provider: %v", err)
		}
	}()

	store := session.NewStore(session.Deps{
		Provider: provider,
		Exporter: newExporter(cfg),
		Renderer: renderer,
	})

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		Store:         store,
		Renderer:      renderer,
		Tokens:        sessionConfig,
		SessionIdle:   time.Duration(cfg.SessionIdleMinutes) * time.Minute,
		ExportTimeout: time.Duration(cfg.ExportTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("Suggestions: %s", cfg.Suggestions)
	return srv.Start()
}

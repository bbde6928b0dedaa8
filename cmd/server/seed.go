package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rishi-ann/redlix-portal/internal/config"
	"github.com/rishi-ann/redlix-portal/internal/database"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
)

const (
	seedDeveloperID    = "dev-test-123"
	seedDeveloperEmail = "dev@csapp.com"
	seedClientID       = "RED-8856"
	seedClientName     = "Acme Corp (Test)"
	seedClientEmail    = "client@acme.com"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a test developer and a linked test client",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		return seed(cmd.Context(), repository.NewDeveloperRepository(db.DB), repository.NewClientRepository(db.DB))
	},
}

func seed(ctx context.Context, developers repository.DeveloperRepository, clients repository.ClientRepository) error {
	dev, err := developers.Upsert(ctx, seedDeveloperID, seedDeveloperEmail)
	if err != nil {
		return err
	}
	log.Info().Str("developerId", dev.ID).Msg("seeded developer")

	exists, err := clients.Exists(ctx, seedClientID)
	if err != nil {
		return err
	}
	if exists {
		_, err = clients.Update(ctx, seedClientID, model.UpdateClientParams{DeveloperIDs: []string{dev.ID}})
		if err != nil {
			return err
		}
		log.Info().Str("clientId", seedClientID).Msg("test client already present, developer link refreshed")
		return nil
	}

	email := seedClientEmail
	client, err := clients.Create(ctx, model.CreateClientParams{
		ID:           seedClientID,
		Name:         seedClientName,
		Email:        &email,
		DeveloperIDs: []string{dev.ID},
	})
	if err != nil {
		return err
	}
	log.Info().Str("clientId", client.ID).Msg("seeded client")
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

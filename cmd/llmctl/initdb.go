package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Initialize the database and seed the guest user and default collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		users := services.NewUserService(db.Client)
		collections := services.NewCollectionService(db.Client)

		_, err = users.Create(ctx, models.UserSpec{
			Username: cfg.GuestUsername,
			Email:    "guest@any.com",
			FullName: "Guest User",
		})
		if err != nil && !errors.Is(err, services.ErrAlreadyExists) {
			return err
		}

		_, err = collections.CreateOrUpdate(ctx, models.CollectionSpec{
			Name:        cfg.DefaultCollection,
			Description: "Default Collection",
			OwnerName:   cfg.GuestUsername,
			DBCategory:  "vector",
		})
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("Database initialized"))
		return nil
	},
}

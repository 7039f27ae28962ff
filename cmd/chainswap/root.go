package main

import (
	"context"
	"log"
	"time"

	"github.com/chainswap/chainswap-backend/api/route"
	"github.com/chainswap/chainswap-backend/bootstrap"
	"github.com/chainswap/chainswap-backend/domain"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/chainswap/chainswap-backend/repository/repository_plugin"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chainswap",
		Short: "Cross-plugin parameter translation service",
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newSeedCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap.App()
			defer app.CloseDBConnection()

			env := app.Env
			db := app.Mongo.Database(env.DBName)
			timeout := time.Duration(env.ContextTimeout) * time.Second

			engine := gin.Default()
			route.Setup(env, timeout, db, engine)

			return engine.Run(env.ServerAddress)
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create indexes and load the canonical semantic vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap.App()
			defer app.CloseDBConnection()

			env := app.Env
			db := app.Mongo.Database(env.DBName)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			repoMaps := repository_plugin.NewParameterMapRepository(db, domain.CollectionPluginParameterMaps)
			if err := repoMaps.EnsureIndexes(ctx); err != nil {
				return err
			}

			repoSemantics := repository_plugin.NewParameterSemanticRepository(db, domain.CollectionPluginParameterSemantics)
			if err := repoSemantics.EnsureIndexes(ctx); err != nil {
				return err
			}

			count, err := repoSemantics.BulkUpsert(ctx, plugin_models.DefaultSemantics())
			if err != nil {
				return err
			}

			log.Printf("seeded %d semantic vocabulary entries", count)
			return nil
		},
	}
}

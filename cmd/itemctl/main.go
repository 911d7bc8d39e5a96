package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coreapp/item-service/internal/config"
	"github.com/coreapp/item-service/internal/database"
	"github.com/coreapp/item-service/internal/storage"
	"github.com/coreapp/item-service/internal/suite"
	"github.com/coreapp/item-service/pkg/logger"
)

var (
	cfg *config.Config

	suiteConfigPath string
	suiteDir        string
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	root := &cobra.Command{
		Use:   "itemctl",
		Short: "Operational commands for the item service",
		// load configuration once for every subcommand
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			return err
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlDB, err := openDatabase()
			if err != nil {
				return err
			}
			return database.RunMigrations(sqlDB)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlDB, err := openDatabase()
			if err != nil {
				return err
			}
			v, dirty, err := database.MigrationVersion(sqlDB)
			if err != nil {
				return err
			}
			if v == 0 {
				fmt.Println("no migrations applied")
				return nil
			}
			fmt.Printf("version %d (dirty=%v)\n", v, dirty)
			return nil
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Generate an empty numbered up/down migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			up, down, err := database.CreateMigration(cfg.Database.MigrationsDir, args[0])
			if err != nil {
				return err
			}
			fmt.Println(up)
			fmt.Println(down)
			return nil
		},
	})

	suiteCmd := &cobra.Command{
		Use:   "suite",
		Short: "Test-suite configuration helpers",
	}

	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "List test files matched by the suite config",
		RunE: func(cmd *cobra.Command, args []string) error {
			scfg, err := suite.LoadConfig(suiteConfigPath)
			if err != nil {
				return err
			}
			files, err := suite.Discover(scfg, suiteDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Println(f)
			}
			if opts := scfg.OptionList(); len(opts) > 0 {
				logger.Debugf("suite options: %v", opts)
			}
			return nil
		},
	}
	discoverCmd.Flags().StringVar(&suiteConfigPath, "config", "suite.ini", "path to suite.ini")
	discoverCmd.Flags().StringVar(&suiteDir, "dir", ".", "directory to discover files in")
	suiteCmd.AddCommand(discoverCmd)

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload the sqlite database file to object storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.NewMinIOStorage(&storage.Config{
				Endpoint:  cfg.Backup.Endpoint,
				AccessKey: cfg.Backup.AccessKey,
				SecretKey: cfg.Backup.SecretKey,
				Bucket:    cfg.Backup.Bucket,
				UseSSL:    cfg.Backup.UseSSL,
			})
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			key, err := store.BackupFile(ctx, cfg.Database.Path)
			if err != nil {
				return err
			}
			logger.Infof("uploaded %s", key)
			return nil
		},
	}

	root.AddCommand(migrateCmd, suiteCmd, backupCmd)

	if err := root.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}

func openDatabase() (*sql.DB, error) {
	db, err := database.ConnectSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return db.DB()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phrasecoach/phrasecoach/internal/profile"
	"github.com/phrasecoach/phrasecoach/internal/version"
	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/server"
	"github.com/phrasecoach/phrasecoach/store"
	"github.com/phrasecoach/phrasecoach/store/db"
)

const greetingBanner = `phrasecoach - sentence drills with spaced repetition`

var rootCmd = &cobra.Command{
	Use:   "phrasecoach",
	Short: "A sentence-drill server with adaptive review scheduling",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:         viper.GetString("mode"),
			Addr:         viper.GetString("addr"),
			Port:         viper.GetInt("port"),
			Data:         viper.GetString("data"),
			Driver:       viper.GetString("driver"),
			DSN:          viper.GetString("dsn"),
			Catalog:      viper.GetString("catalog"),
			SessionCap:   viper.GetInt("session-cap"),
			SoftSpelling: viper.GetBool("soft-spelling"),
			Version:      version.GetCurrentVersion(viper.GetString("mode")),
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid profile", slog.String("error", err.Error()))
			os.Exit(1)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", slog.String("error", err.Error()))
			os.Exit(1)
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		defer storeInstance.Close()
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if instanceProfile.Catalog != "" {
			items, err := catalog.Load(instanceProfile.Catalog)
			if err != nil {
				slog.Error("failed to load drill catalog", slog.String("catalog", instanceProfile.Catalog), slog.String("error", err.Error()))
				os.Exit(1)
			}
			seeded, err := storeInstance.SeedDrillItems(ctx, items)
			if err != nil {
				slog.Error("failed to seed drill catalog", slog.String("error", err.Error()))
				os.Exit(1)
			}
			if seeded > 0 {
				slog.Info("drill catalog seeded", slog.Int("items", seeded))
			}
		}

		s, err := server.NewServer(instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", slog.String("error", err.Error()))
			os.Exit(1)
		}

		fmt.Printf("%s\nversion %s, mode %s, driver %s\n", greetingBanner, instanceProfile.Version, instanceProfile.Mode, instanceProfile.Driver)
		if err := s.Start(ctx); err != nil {
			slog.Error("server exited with error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8230, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name")
	rootCmd.PersistentFlags().String("catalog", "", "path to the drill manifest JSON used to seed the item table")
	rootCmd.PersistentFlags().Int("session-cap", 20, "maximum number of items in one study session")
	rootCmd.PersistentFlags().Bool("soft-spelling", true, "rate a lone spelling slip Good instead of Again")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("phrasecoach")
	viper.AutomaticEnv()
}

package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/loadout/internal/config"
	"github.com/misterclayt0n/loadout/internal/logging"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/storage"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config

	// now is swapped in tests.
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:           "loadout",
	Short:         "CLI workout tracker with priority based weekly volume and training load stats",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}

		logging.Setup(logging.SetupParams{
			LogLevel:      c.Log.Level,
			LogFileName:   c.Log.File,
			LogFormatJSON: c.Log.JSON,
		})

		if err := utils.SetLocation(c.Training.Timezone); err != nil {
			return err
		}

		cfg = c
		logrus.WithField("command", cmd.Name()).Debug("config loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/loadout/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func openStorage() (*storage.Storage, error) {
	conn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}
	st, err := storage.Open(conn, cfg.DB.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return st, nil
}

// loadSettings merges persisted settings over the config defaults.
func loadSettings(st *storage.Storage) (models.Settings, error) {
	return st.GetSettings(models.Settings{
		TrainingInterval: cfg.Training.Interval,
		DefaultRPE:       cfg.Training.DefaultRPE,
	})
}

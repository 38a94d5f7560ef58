package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"containermap/internal/app"
	"containermap/internal/config"
	"containermap/internal/engine"
	"containermap/internal/repo"
)

var rootCmd = &cobra.Command{
	Use:   "containermap",
	Short: "Map source container descriptions onto subcontainers",
	Long: `containermap converts a source container description (type/indicator/barcode
triples and a series) into a subcontainer linked to a top container, which may
itself be linked to a container profile.
- Lookup store: top containers and container profiles loaded from containermap.yml.
- Rules: an ordered pipeline that reuses stored top containers by barcode or by
  series and indicator, creates new ones otherwise, and links new top containers
  to the profile named by type_1.
- Validation: a source needs barcode_1, or both type_1 and indicator_1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errRejected is returned after validation errors have been printed.
var errRejected = errors.New("source container rejected")

var setupOnce sync.Once

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the command line and returns the process exit code. Errors go
// to stderr so stdout only ever carries command output.
func execute(args []string, stderr io.Writer) int {
	setupOnce.Do(func() {
		cobra.OnInitialize(initConfig)
		addPersistentFlags()
		registerCommands()
	})
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func initConfig() {
	viper.SetEnvPrefix("CONTAINERMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory holding "+config.FileName)
	rootCmd.PersistentFlags().String("config", "", "config file (overrides the workspace lookup)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("events", false, "record mapping outcomes in the workspace audit database")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("events", rootCmd.PersistentFlags().Lookup("events"))
}

func registerCommands() {
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(samplesCmd())
	rootCmd.AddCommand(storeCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(eventsCmd())
}

// --- helpers ---

type env struct {
	Config *config.Config
	Repo   *repo.Repo
	Engine *engine.Engine
	Logger *slog.Logger
}

func loadConfig() (*config.Config, error) {
	if path := viper.GetString("config"); path != "" {
		return config.FromFile(path)
	}
	return config.LoadOptional(viper.GetString("workspace"))
}

func withEnv(fn func(env) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level := viper.GetString("log-level")
	if level == "" {
		level = cfg.Logging.Level
	}
	logger, err := app.NewLogger(os.Stderr, level)
	if err != nil {
		return err
	}
	r, err := app.NewRepo(cfg)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	logger.Debug("store loaded", "top_containers", len(r.TopContainers()), "container_profiles", len(r.ContainerProfiles()))
	return fn(env{Config: cfg, Repo: r, Engine: engine.NewDefault(logger), Logger: logger})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

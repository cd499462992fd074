package cliparse

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the resolved command-line configuration. Flags override
// environment variables, which override .env values.
type Config struct {
	// LearningsPath is the writable learnings database. Empty
	// disables learning.
	LearningsPath string

	// LearnedJSON is an explicit learned-names resource path.
	// Empty falls back to the default candidate locations.
	LearnedJSON string

	// VoterDB is the voter roll database used by search and serve.
	VoterDB string

	Port           int
	TrailingHalant bool
	Debug          bool

	Learn   bool
	Unlearn bool
	Import  bool
	Export  bool
	Serve   bool

	// Args are the remaining positional arguments.
	Args []string
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// ParseFlags parses args (without the program name). A .env file in
// the working directory is loaded first when present; its absence is
// not an error.
func ParseFlags(args []string) (Config, error) {
	godotenv.Load()

	var cfg Config
	fs := flag.NewFlagSet("nepalify", flag.ContinueOnError)

	fs.StringVar(&cfg.LearningsPath, "learnings",
		envOr("NEPALIFY_LEARNINGS_DB", ""), "Path to the learnings database")
	fs.StringVar(&cfg.LearnedJSON, "learned-json",
		envOr("NEPALIFY_LEARNED_JSON", ""), "Path to the learned names JSON resource")
	fs.StringVar(&cfg.VoterDB, "voter-db",
		envOr("NEPALIFY_VOTER_DB", ""), "Path to the voter roll database")
	fs.IntVar(&cfg.Port, "port",
		envIntOr("NEPALIFY_PORT", 8080), "API server port")

	fs.BoolVar(&cfg.TrailingHalant, "trailing-halant", false,
		"Keep an explicit halant on word-final consonants")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	fs.BoolVar(&cfg.Learn, "learn", false, "Learn a word. 2 arguments: pattern & word")
	fs.BoolVar(&cfg.Unlearn, "unlearn", false, "Unlearn a pattern")
	fs.BoolVar(&cfg.Import, "import", false, "Import learnings from a JSON file")
	fs.BoolVar(&cfg.Export, "export", false, "Export learnings to a JSON file")
	fs.BoolVar(&cfg.Serve, "serve", false, "Run the search API server")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Args = fs.Args()

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	needLearnings := cfg.Learn || cfg.Unlearn || cfg.Import || cfg.Export
	if needLearnings && cfg.LearningsPath == "" {
		return fmt.Errorf("learning operations need -learnings")
	}

	switch {
	case cfg.Learn && len(cfg.Args) != 2:
		return fmt.Errorf("-learn needs exactly 2 arguments: pattern word")
	case cfg.Unlearn && len(cfg.Args) != 1:
		return fmt.Errorf("-unlearn needs exactly 1 argument: pattern")
	case (cfg.Import || cfg.Export) && len(cfg.Args) != 1:
		return fmt.Errorf("-import/-export need exactly 1 argument: file")
	case cfg.Serve && cfg.VoterDB == "":
		return fmt.Errorf("-serve needs -voter-db")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	return nil
}

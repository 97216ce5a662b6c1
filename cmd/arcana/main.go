// Arcana reads tarot spreads and prints prioritized narrative entries.
//
// A spread is a JSON array of card records. The read command runs pattern
// detection over it and writes the reading to stdout; logs go to stderr.
//
// Usage:
//
//	# Read a spread from a file
//	arcana read spread.json
//
//	# Read a spread from stdin
//	echo '[{"number": 13}, {"number": 14}, {"number": 17}]' | arcana read -
//
//	# Read with the Thoth deck and plain-text output
//	arcana read --deck thoth-a1 --format text spread.json
//
// Configuration is loaded from ~/.config/arcana/config.yaml and ARCANA_*
// environment variables. See internal/config for details.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fyrsmithlabs/arcana/internal/config"
	"github.com/fyrsmithlabs/arcana/internal/logging"
	"github.com/fyrsmithlabs/arcana/internal/reading"
	"github.com/fyrsmithlabs/arcana/internal/telemetry"
	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var (
	// configPath overrides the default config file location
	configPath string
	// read command flags
	readDeck     string
	readLimit    int
	readPatterns bool
	readFormat   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcana",
	Short: "Archetypal pattern detection for tarot spreads",
	Long: `arcana detects archetypal patterns in tarot spreads and turns them into
prioritized narrative entries. Spreads are JSON arrays of card records.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/arcana/config.yaml)")

	readCmd.Flags().StringVar(&readDeck, "deck", "", "deck style key or alias (default from config)")
	readCmd.Flags().IntVar(&readLimit, "limit", 0, "maximum narrative entries (0 = engine default)")
	readCmd.Flags().BoolVar(&readPatterns, "patterns", false, "include the raw pattern set in the output")
	readCmd.Flags().StringVar(&readFormat, "format", "json", "output format: json or text")

	kbCmd.AddCommand(kbLintCmd)
	kbCmd.AddCommand(kbDecksCmd)
	kbCmd.AddCommand(kbShowCmd)

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(versionCmd)
}

// readCmd performs a reading over a spread from a file or stdin
var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read a spread and print the prioritized narrative",
	Long: `Read a spread from a file or stdin and print the prioritized narrative.

The spread is a JSON array of card records. Major Arcana records carry
"number" (0-21); Minor Arcana records carry "suit", "rank", and "rankValue".

Examples:
  # Read a spread file
  arcana read spread.json

  # Read from stdin
  echo '[{"number": 13}, {"number": 14}, {"number": 17}]' | arcana read -

  # Thoth titles, text output, top three entries only
  arcana read --deck thoth-a1 --format text --limit 3 spread.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

// kbCmd groups knowledge-base inspection commands
var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the pattern knowledge base",
}

// kbLintCmd validates a knowledge base file
var kbLintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Validate a knowledge base file",
	Long: `Validate a knowledge base YAML file and print its table counts.
With no argument the embedded knowledge base is checked.

Examples:
  # Check the embedded knowledge base
  arcana kb lint

  # Check a custom knowledge base
  arcana kb lint ./my-knowledge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKBLint,
}

// kbDecksCmd lists the deck styles the knowledge base registers
var kbDecksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List registered deck styles",
	RunE:  runKBDecks,
}

// kbShowCmd dumps the active knowledge base as YAML
var kbShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump the active knowledge base as YAML",
	Long: `Dump the active knowledge base as YAML on stdout.

The output is a single document in the same shape kb lint accepts, so it
can be edited and loaded back via the knowledge.path config key.`,
	RunE: runKBShow,
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("arcana by Fyrsmith Labs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// runRead handles the read command
func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on exit
	}()

	tel, err := telemetry.New(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", zap.Error(err))
		}
	}()

	base, err := loadBase(cfg)
	if err != nil {
		return err
	}

	svc, err := reading.NewService(base,
		reading.WithLogger(logger),
		reading.WithDefaultDeck(cfg.Deck.Style),
		reading.WithMaxSpreadSize(cfg.Reading.MaxSpreadSize),
	)
	if err != nil {
		return fmt.Errorf("failed to create reading service: %w", err)
	}

	spread, err := readSpread(args)
	if err != nil {
		return err
	}

	res, err := svc.Perform(ctx, &reading.Request{
		Cards:           spread,
		Deck:            readDeck,
		Limit:           readLimit,
		IncludePatterns: readPatterns,
	})
	if err != nil {
		return err
	}

	return writeReading(os.Stdout, res, readFormat)
}

// runKBLint handles the kb lint command
func runKBLint(cmd *cobra.Command, args []string) error {
	source := "embedded"
	var base *knowledge.Base
	var err error

	if len(args) == 0 {
		base, err = knowledge.Default()
	} else {
		source = args[0]
		base, err = knowledge.LoadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("knowledge base invalid: %w", err)
	}

	fmt.Printf("Knowledge base OK (%s)\n", source)
	fmt.Printf("  triads:       %d\n", len(base.Triads))
	fmt.Printf("  dyads:        %d\n", len(base.Dyads))
	fmt.Printf("  journey:      %d\n", len(base.Journey))
	fmt.Printf("  progressions: %d\n", len(base.Progressions))
	fmt.Printf("  lineages:     %d\n", len(base.Lineages))
	fmt.Printf("  decks:        %d\n", len(base.Decks))
	fmt.Printf("  passages:     %d\n", len(base.Passages))
	return nil
}

// runKBDecks handles the kb decks command
func runKBDecks(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	base, err := loadBase(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Decks: %d (default: %s)\n", len(base.Decks), cfg.Deck.Style)
	for _, d := range base.Decks {
		fmt.Printf("\n%s — %s\n", d.Key, d.Name)
		if len(d.Aliases) > 0 {
			fmt.Printf("  aliases:    %s\n", strings.Join(d.Aliases, ", "))
		}
		if len(d.Majors) > 0 || len(d.Suits) > 0 || len(d.Courts) > 0 {
			fmt.Printf("  titles:     %d majors, %d suits, %d courts\n", len(d.Majors), len(d.Suits), len(d.Courts))
		}
		if len(d.Epithets) > 0 {
			fmt.Printf("  epithets:   %d\n", len(d.Epithets))
		}
		if len(d.Numerology) > 0 {
			fmt.Printf("  numerology: %d themes\n", len(d.Numerology))
		}
	}
	return nil
}

// runKBShow handles the kb show command
func runKBShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	base, err := loadBase(cfg)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(base)
	if err != nil {
		return fmt.Errorf("failed to encode knowledge base: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

// loadBase loads the configured knowledge base, falling back to the
// embedded one when no path is configured.
func loadBase(cfg *config.Config) (*knowledge.Base, error) {
	if cfg.Knowledge.Path != "" {
		base, err := knowledge.LoadFile(cfg.Knowledge.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load knowledge base %s: %w", cfg.Knowledge.Path, err)
		}
		return base, nil
	}
	base, err := knowledge.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded knowledge base: %w", err)
	}
	return base, nil
}

// readSpread reads the spread JSON from a file or stdin.
func readSpread(args []string) ([]cards.Card, error) {
	var content []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("no spread to read")
	}

	var spread []cards.Card
	if err := json.Unmarshal(content, &spread); err != nil {
		return nil, fmt.Errorf("failed to parse spread: %w", err)
	}
	return spread, nil
}

// writeReading renders the reading as JSON or plain text.
func writeReading(w io.Writer, res *reading.Reading, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode reading: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case "text":
		fmt.Fprintf(w, "%s — %s, %d cards\n", res.ID, res.Deck, res.CardCount)
		if len(res.Entries) == 0 {
			fmt.Fprintln(w, "No notable patterns.")
			return nil
		}
		for i, e := range res.Entries {
			fmt.Fprintf(w, "%2d. [P%d] %s\n", i+1, e.Priority, e.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}

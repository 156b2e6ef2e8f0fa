/*
Package main implements the Inzaghi restaurant retrieval CLI.

Inzaghi keeps a static restaurant dataset fully in memory: a patricia trie
over names, an OR-semantics inverted index over menu words and an
AND-semantics inverted index over location tokens, built once at startup and
read-only afterwards. A free-text message is answered by the candidate
heuristic, which merges a numeric budget scan with location, menu and name
lookups into one deduplicated list. That list is what a chat layer would feed
to a language model as retrieval context; this binary only prints it.

# Usage

Run against the default dataset from the config file:

	inzaghi

Use a custom dataset and enable debug logging:

	inzaghi -data /path/to/restaurants.json -d

Convert a JSON dataset to the compact MessagePack form:

	inzaghi -data data/restaurants.json -convert data/restaurants.bin

Inside the REPL, plain text runs the candidate heuristic while /name, /menu,
/loc, /tier, /under and /get hit a single catalog operation.

# Configuration

Runtime configuration lives in a TOML file that is created with defaults on
first run:

	[data]
	path = "data/restaurants.json"

	[cli]
	max_candidates = 15

The -data flag and the INZAGHI_DATA environment variable (also read from a
.env file) override the configured dataset path.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/danigit7/Inzaghi-FoodAI/internal/cli"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/catalog"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/config"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/dataset"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "inzaghi"
	gh      = "https://github.com/danigit7/Inzaghi-FoodAI"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the pieces together: config, dataset, catalog, selector, REPL.
// The packages hold the logic; main only manages the flow.
func main() {
	sigHandler()

	// .env first so flag defaults can come from the environment
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Dataset file (.json, .bin or .msgpack); overrides config and INZAGHI_DATA")
	configPath := flag.String("config", "inzaghi.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	limit := flag.Int("limit", 0, "Max candidates printed for free-text queries (0 uses the config value)")
	convertTo := flag.String("convert", "", "Convert the dataset to msgpack at the given path and exit")
	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ Inzaghi ] Peshawar restaurant retrieval core")
		logger.Print("", "version", Version)
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	appConfig, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := *dataPath
	if path == "" {
		path = os.Getenv("INZAGHI_DATA")
	}
	if path == "" {
		path = appConfig.Data.Path
	}
	log.Debugf("Using dataset at: %s", path)

	if *convertTo != "" {
		if err := dataset.Convert(path, *convertTo); err != nil {
			log.Fatalf("Convert failed: %v", err)
		}
		return
	}

	restaurants, err := dataset.Load(path)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	cat := catalog.New(restaurants)

	selector, err := suggest.NewSelector(cat)
	if err != nil {
		log.Fatalf("Failed to init selector: %v", err)
	}
	defer selector.Release()

	maxCandidates := appConfig.CLI.MaxCandidates
	if *limit > 0 {
		maxCandidates = *limit
	}

	showStartupInfo(path, cat.Len())

	handler := cli.NewInputHandler(cat, selector, maxCandidates)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataPath string, count int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" Inzaghi ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("dataset: ( %s )", dataPath)
	log.Infof("restaurants indexed: [ %d ]", count)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}

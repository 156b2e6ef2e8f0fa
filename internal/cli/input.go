// Package cli handles the interactive query loop, used for testing the
// catalog and the candidate heuristic from a terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/danigit7/Inzaghi-FoodAI/pkg/catalog"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/suggest"
)

// InputHandler processes lines from stdin. Free text runs the candidate
// heuristic; lines starting with "/" query a single catalog operation.
type InputHandler struct {
	catalog       *catalog.Catalog
	selector      *suggest.Selector
	maxCandidates int
}

// NewInputHandler handles initialization of the InputHandler.
func NewInputHandler(c *catalog.Catalog, s *suggest.Selector, maxCandidates int) *InputHandler {
	return &InputHandler{
		catalog:       c,
		selector:      s,
		maxCandidates: maxCandidates,
	}
}

// Start begins the interface loop. It prompts, reads a line from stdin and
// hands the trimmed input to handleInput. The loop ends on EOF or a read
// error.
func (h *InputHandler) Start() error {
	log.Print("Inzaghi catalog CLI")
	log.Print("type a message and press Enter for candidates (Ctrl+C to exit)")
	log.Print("commands: /name <prefix>  /menu <query>  /loc <query>  /tier <budget>  /under <price>  /get <id>")

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line and prints the matches.
func (h *InputHandler) handleInput(line string) {
	start := time.Now()

	if strings.HasPrefix(line, "/") {
		h.handleCommand(line)
	} else {
		candidates := h.selector.Candidates(line)
		if len(candidates) > h.maxCandidates {
			candidates = candidates[:h.maxCandidates]
		}
		h.printRestaurants(candidates)
	}

	log.Debugf("Took [ %v ] for input '%s'", time.Since(start), line)
}

func (h *InputHandler) handleCommand(line string) {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	if arg == "" {
		log.Errorf("Usage: %s <argument>", command)
		return
	}

	switch command {
	case "/name":
		h.printRestaurants(h.catalog.SearchByName(arg))
	case "/menu":
		h.printRestaurants(h.catalog.SearchByMenu(arg))
	case "/loc":
		h.printRestaurants(h.catalog.SearchByLocation(arg))
	case "/tier":
		h.printRestaurants(h.catalog.FilterByBudget(arg))
	case "/under":
		price, err := strconv.Atoi(arg)
		if err != nil {
			log.Errorf("Not a price: %q", arg)
			return
		}
		h.printItems(h.catalog.ItemsWithinBudget(price))
	case "/get":
		r, ok := h.catalog.Get(arg)
		if !ok {
			log.Warnf("No restaurant with id %q", arg)
			return
		}
		h.printRestaurants([]*catalog.Restaurant{r})
	default:
		log.Errorf("Unknown command: %s", command)
	}
}

func (h *InputHandler) printRestaurants(restaurants []*catalog.Restaurant) {
	if len(restaurants) == 0 {
		log.Warn("No matches")
		return
	}
	log.Printf("Found %d matches:", len(restaurants))
	for i, r := range restaurants {
		clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Name)
		log.Printf("%2d. %-40s %-25s [%s]", i+1, clName, r.Location, r.Budget)
	}
}

func (h *InputHandler) printItems(matches []catalog.ItemMatch) {
	if len(matches) == 0 {
		log.Warn("No items under that price")
		return
	}
	log.Printf("Found %d items:", len(matches))
	for i, m := range matches {
		log.Printf("%2d. %-30s %-30s (price: %6d)", i+1, m.Item.Item, m.Restaurant.Name, m.Item.Price)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rulesets",
	Long: `Shows every ruleset with the spawn schedule it will run with,
after --config and --difficulty are applied.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No rulesets available.")
		return nil
	}

	fmt.Println("Available rulesets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	for _, g := range games {
		cfg, err := dasher.LoadConfig(g.ID == dasher.ClassicID)
		if err != nil {
			return err
		}

		hearts := "no hearts"
		if cfg.Horde.HeartsEnabled {
			hearts = "hearts"
		}
		contact := "sprite contact"
		if r := cfg.Ghost.ContactRadius; r > 0 {
			contact = fmt.Sprintf("contact %.0f", r)
		}
		fmt.Printf("  %-*s  %s (%s, %s)\n", maxIDLen, g.ID, g.Title, hearts, contact)
		if g.Summary != "" {
			fmt.Printf("  %-*s    %s\n", maxIDLen, "", g.Summary)
		}
		for _, s := range cfg.Horde.Steps() {
			fmt.Printf("  %-*s    from %4d points: a ghost every %.2fs\n", maxIDLen, "", s.MinScore, s.Interval)
		}
		fmt.Println()
	}

	fmt.Println("Run 'dasher play <id>' to play.")
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/ruinahall/deckwright/internal/card"
	"github.com/ruinahall/deckwright/internal/catalog"
	"github.com/ruinahall/deckwright/internal/config"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card-id]",
	Short: "Display a combat page from the catalog",
	Long: `Show displays a combat page's cost, range, effect, dice and authored
effect affinities. Card ids are rank-and-name slugs as produced by the
catalog import, e.g. 'urban-legend.will-o-the-wisp'.

Examples:
  deckwright show urban-legend.will-o-the-wisp
  deckwright show canard.downpour`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("no catalog at %s; run 'deckwright catalog import' first", cfg.CatalogPath)
		}
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}

		c, ok := cat.Get(cardID)
		if !ok {
			return fmt.Errorf("card not found: %s", cardID)
		}

		displayCard(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the card details, wrapping the effect text to the
// terminal width.
func displayCard(c *card.Card) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	fmt.Println()
	fmt.Println(colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c.Name))
	fmt.Println(colorize.CyanString("ID:    ") + colorize.HiWhiteString(c.ID))
	fmt.Println(colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s", c.Rank))
	fmt.Println(colorize.CyanString("Cost:  ") + colorize.HiWhiteString("%d light", c.Cost))
	if c.Range != "" {
		fmt.Println(colorize.CyanString("Range: ") + colorize.HiWhiteString(c.Range))
	}

	if c.Effect != "" {
		fmt.Println()
		colorize.Cyan("Effect:")
		for _, line := range wrapText(c.Effect, textWidth) {
			fmt.Printf("  %s\n", line)
		}
	}

	if len(c.Dice) > 0 {
		fmt.Println()
		colorize.Cyan("Dice:")
		for _, d := range c.Dice {
			line := fmt.Sprintf("%-6s %d-%d", d.Kind, d.Min, d.Max)
			if d.Effect != "" {
				line += "  " + d.Effect
			}
			fmt.Printf("  %s\n", line)
		}
	}

	if len(c.Affinity) > 0 {
		fmt.Println()
		colorize.Cyan("Affinities:")
		effects := make([]string, 0, len(c.Affinity))
		for e := range c.Affinity {
			effects = append(effects, e)
		}
		sort.Strings(effects)
		for _, e := range effects {
			fmt.Printf("  %-12s %.1f\n", e, c.Affinity[e])
		}
	}
	fmt.Println()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		// Check if adding this word would exceed the width
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			// Word fits on current line with a space
			currentLine += " " + word
		} else {
			// Word doesn't fit, start a new line
			result = append(result, currentLine)
			currentLine = word
		}
	}

	// Add the last line if not empty
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

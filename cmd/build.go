package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ruinahall/deckwright/internal/builder"
	"github.com/ruinahall/deckwright/internal/catalog"
	"github.com/ruinahall/deckwright/internal/config"
)

var buildFlags struct {
	effect          string
	mayInclude      []string
	beam            int
	temperature     float64
	seed            int64
	output          string
	debug           bool
	prolonged       bool
	excludeLowRank  bool
	excludeHighRank bool
	catalogPath     string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a 9-card deck focused on a status effect",
	Long: `Build searches the combat page catalog for the best 9-card deck for the
requested status effect. Keyword and rank constraints narrow the candidates;
beam width and temperature trade search quality against variety.

Examples:
  deckwright build --effect bleed
  deckwright build --effect burn --exclude-low-rank --temperature 0.2
  deckwright build --effect smoke --may-include "urban nightmare,discard"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		catalogPath := buildFlags.catalogPath
		if catalogPath == "" {
			catalogPath = cfg.CatalogPath
		}
		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			return fmt.Errorf("no catalog at %s; run 'deckwright catalog import' first", catalogPath)
		}

		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		beam := buildFlags.beam
		if beam <= 0 {
			beam = cfg.BeamWidth
		}
		temp := buildFlags.temperature
		if !cmd.Flags().Changed("temperature") {
			temp = cfg.Temperature
		}

		cons := builder.Constraints{
			ExcludeLowRank:  buildFlags.excludeLowRank,
			ExcludeHighRank: buildFlags.excludeHighRank,
			MayInclude:      splitKeywords(buildFlags.mayInclude),
		}
		logger.Debug("filtering catalog",
			zap.Int("cards", len(cat.Cards)),
			zap.Bool("exclude_low_rank", cons.ExcludeLowRank),
			zap.Bool("exclude_high_rank", cons.ExcludeHighRank),
			zap.Strings("may_include", cons.MayInclude))

		set, err := builder.Filter(cat.Cards, cons)
		if err != nil {
			return err
		}
		if len(cons.MayInclude) > 0 && !set.AnyKeywordEligible() {
			logger.Warn("no candidate matches the requested keywords; the deck cannot validate",
				zap.Strings("may_include", cons.MayInclude))
		}

		checkpoint := builder.NewCheckpoint()
		engine := builder.NewEngine(
			builder.NewScorer(buildFlags.effect, nil),
			builder.WithBeamWidth(beam),
			builder.WithTemperature(temp),
			builder.WithSeed(buildFlags.seed),
			builder.WithCheckpoint(checkpoint),
		)

		deck, err := engine.Search(set)
		if err != nil {
			if buildFlags.debug {
				fmt.Fprintln(os.Stderr, checkpoint)
			}
			return err
		}

		displayDeck(deck)

		stats := builder.ComputeStats(deck.Cards)
		displayStats(stats)
		if buildFlags.prolonged && !stats.SustainsProlonged() {
			colorize.Yellow("Warning: deck may not sustain a prolonged battle (light regen %d, draw %d)",
				stats.TotalLightRegen, stats.TotalDraw)
		}
		if !buildFlags.prolonged && !stats.SuitsShortBattle() {
			colorize.Yellow("Warning: deck may be slow for a short battle (%.1f dice/card, %.1f attack:defense)",
				stats.DicePerCard, stats.AttackDefenseRate)
		}

		if buildFlags.output != "" {
			if err := exportDeck(deck, buildFlags.output); err != nil {
				return err
			}
			fmt.Printf("Deck exported to %s\n", buildFlags.output)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildFlags.effect, "effect", "e", "", "status effect to optimize for (e.g. bleed, burn, smoke)")
	buildCmd.Flags().StringSliceVar(&buildFlags.mayInclude, "may-include", nil, "keywords at least one card must match")
	buildCmd.Flags().IntVarP(&buildFlags.beam, "beam", "b", 0, "beam width (default from config, normally 6)")
	buildCmd.Flags().Float64VarP(&buildFlags.temperature, "temperature", "t", 0.6, "sampling randomness in [0,1]; 0.01 and below is greedy")
	buildCmd.Flags().Int64Var(&buildFlags.seed, "seed", 42, "random seed for reproducible decks")
	buildCmd.Flags().StringVarP(&buildFlags.output, "output", "o", "", "path to export the generated deck as JSON")
	buildCmd.Flags().BoolVar(&buildFlags.debug, "debug", false, "print the search checkpoint on failure")
	buildCmd.Flags().BoolVar(&buildFlags.prolonged, "prolonged", false, "judge fitness for long battles instead of short ones")
	buildCmd.Flags().BoolVar(&buildFlags.excludeLowRank, "exclude-low-rank", false, "exclude Canard through Urban Plague pages")
	buildCmd.Flags().BoolVar(&buildFlags.excludeHighRank, "exclude-high-rank", false, "exclude Star of the City and Impuritas Civitatis pages")
	buildCmd.Flags().StringVar(&buildFlags.catalogPath, "catalog", "", "catalog file (default from config)")
	_ = buildCmd.MarkFlagRequired("effect")
}

// splitKeywords flattens comma-joined values so both
// --may-include a,b and repeated flags work.
func splitKeywords(raw []string) []string {
	var out []string
	for _, kw := range raw {
		for _, part := range strings.Split(kw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func displayDeck(deck *builder.Deck) {
	fmt.Println()
	colorize.HiWhite("Deck (score %.3f):", deck.Score)
	for i, c := range deck.Cards {
		fmt.Printf("  %d. %s  %s\n", i+1,
			colorize.HiWhiteString("%-28s", c.Name),
			colorize.CyanString("%s · %d light · %d dice", c.Rank, c.Cost, len(c.Dice)))
	}
	fmt.Println()
}

func displayStats(stats builder.Stats) {
	colorize.Cyan("Statistics:")
	fmt.Printf("  average cost:        %.2f\n", stats.AverageCost)
	fmt.Printf("  dice per card:       %.2f (weighted %.2f)\n", stats.DicePerCard, stats.WeightedDicePer)
	fmt.Printf("  average die value:   %.2f (weighted %.2f)\n", stats.AverageDieValue, stats.WeightedDieValue)
	fmt.Printf("  attack : defense:    %d : %d (%.1f)\n", stats.OffensiveDice, stats.DefensiveDice, stats.AttackDefenseRate)
	fmt.Printf("  total light regen:   %d\n", stats.TotalLightRegen)
	fmt.Printf("  total page draw:     %d\n", stats.TotalDraw)
}

func exportDeck(deck *builder.Deck, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %v", err)
	}
	data, err := json.MarshalIndent(deck.Cards, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding deck: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing deck: %v", err)
	}
	return nil
}

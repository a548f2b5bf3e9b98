package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/ruinahall/deckwright/internal/catalog"
	"github.com/ruinahall/deckwright/internal/config"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the combat page catalog",
	Long:  `Commands for importing and inspecting the combat page catalog.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file-or-url]",
	Short: "Import the combat page list into the catalog",
	Long: `Import parses the wiki's "List of Combat Pages" table, normalizes the
dice-effect text, authors per-effect affinity profiles, and saves the result
as the JSON catalog the build command reads. With no argument the configured
wiki URL is fetched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		source := cfg.WikiURL
		if len(args) == 1 {
			source = args[0]
		}

		var reader io.Reader
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			logger.Info("fetching combat page list", zap.String("url", source))
			client := &http.Client{Timeout: 60 * time.Second}
			reader, err = catalog.FetchWikiHTML(cmd.Context(), client, source)
			if err != nil {
				return fmt.Errorf("error fetching %s: %v", source, err)
			}
		} else {
			file, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("error opening %s: %v", source, err)
			}
			defer file.Close()
			reader = file
		}

		cards, err := catalog.ParseWikiHTML(reader)
		if err != nil {
			return err
		}
		cat, err := catalog.New(cards)
		if err != nil {
			return err
		}

		if err := cat.Save(cfg.CatalogPath); err != nil {
			return err
		}
		logger.Info("catalog imported",
			zap.Int("cards", len(cat.Cards)),
			zap.String("path", cfg.CatalogPath))
		fmt.Printf("Imported %d combat pages to %s\n", len(cat.Cards), cfg.CatalogPath)
		return nil
	},
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show catalog contents by rank",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("Catalog: %s (%d cards)\n", cfg.CatalogPath, len(cat.Cards))
		for _, rc := range cat.CountByRank() {
			fmt.Printf("  %-22s %d\n", rc.Rank, rc.Count)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogLsCmd)
}

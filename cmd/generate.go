package cmd

import (
	"fmt"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kresadlo/cardforge/internal/compose"
	"github.com/kresadlo/cardforge/internal/config"
	"github.com/kresadlo/cardforge/internal/fontset"
	"github.com/kresadlo/cardforge/internal/item"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate card images from a CSV file",
	Long: `Generate renders one PNG card per row of the input CSV file.

The card type selects the frame image and the draw order of the text
blocks. Fonts, frames and paths come from cardforge.toml when present;
flags override the config file.

Examples:
  cardforge generate
  cardforge generate --csv_path data/artefakty.csv --card_type magical-items
  cardforge generate --output printable --fail-fast`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("csv_path") {
			cfg.CSVPath, _ = cmd.Flags().GetString("csv_path")
		}
		if cmd.Flags().Changed("card_type") {
			cfg.CardType, _ = cmd.Flags().GetString("card_type")
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDir, _ = cmd.Flags().GetString("output")
		}
		failFast, _ := cmd.Flags().GetBool("fail-fast")

		// Resolve the composer before the input file is opened, so a bad
		// selector fails without touching any row.
		composer, err := compose.For(cfg.CardType)
		if err != nil {
			return err
		}

		fonts, err := fontset.Load(cfg.Fonts.Regular, cfg.Fonts.Italic)
		if err != nil {
			return err
		}

		fmt.Printf("trying to open file: %s\n", cfg.CSVPath)
		items, err := item.LoadCSV(cfg.CSVPath)
		if err != nil {
			return err
		}

		failed := 0
		for i, it := range items {
			c, err := composer(cfg, fonts, it)
			if err == nil {
				var path string
				path, err = c.Save(cfg.OutputDir)
				if err == nil {
					fmt.Printf("saving into: %s\n", path)
					continue
				}
			}

			colorize.Red("row %d (%s): %v", i+1, it.Name, err)
			if failFast {
				return &exitError{
					code: 2,
					err:  fmt.Errorf("row %d (%s): %v", i+1, it.Name, err),
				}
			}
			failed++
		}

		if failed > 0 {
			return &exitError{
				code: 2,
				err:  fmt.Errorf("%d of %d rows failed", failed, len(items)),
			}
		}

		fmt.Printf("generated %d cards in %s\n", len(items), cfg.OutputDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("csv_path", filepath.Join("data", "artefakty.csv"), "path to the card data .csv file")
	generateCmd.Flags().String("card_type", "magical-items", "magical-items or maze-cards")
	generateCmd.Flags().StringP("output", "o", "cards", "directory for rendered card images (must exist)")
	generateCmd.Flags().String("config", "", "path to a config file (default: ./cardforge.toml if present)")
	generateCmd.Flags().Bool("fail-fast", false, "abort the batch on the first row error")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kresadlo/cardforge/internal/config"
	"github.com/kresadlo/cardforge/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the workspace before generating cards",
	Long: `Validate checks that a generate run can succeed: the config file parses,
the font files are valid OpenType fonts, the frame image decodes, the input
CSV carries the required columns and the output directory exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		v := validator.NewValidator(cfg)
		results := v.Validate()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Workspace is ready to generate %s.\n", cfg.CardType)
		} else {
			fmt.Printf("❌ Workspace has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("config", "", "path to a config file (default: ./cardforge.toml if present)")
}

package validator

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"

	"github.com/kresadlo/cardforge/internal/compose"
	"github.com/kresadlo/cardforge/internal/config"
	"github.com/kresadlo/cardforge/internal/item"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a workspace against its configuration before a
// generate run, collecting everything wrong rather than stopping at
// the first finding.
type Validator struct {
	Config  *config.Config
	Results ValidationResults
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		Config:  cfg,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateCardType()
	v.validateFonts()
	v.validateFrame()
	v.validateCSV()
	v.validateOutputDir()

	return v.Results
}

func (v *Validator) validateCardType() {
	if _, err := compose.For(v.Config.CardType); err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
	}
}

func (v *Validator) validateFonts() {
	for _, path := range []string{v.Config.Fonts.Regular, v.Config.Fonts.Italic} {
		data, err := os.ReadFile(path)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("font file %s is not readable: %v", path, err))
			continue
		}
		if _, err := opentype.Parse(data); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("font file %s is not a valid OpenType font: %v", path, err))
		}
	}
}

func (v *Validator) validateFrame() {
	var framePath string
	switch v.Config.CardType {
	case "magical-items":
		framePath = v.Config.Frames.MagicalItem
	case "maze-cards":
		framePath = v.Config.Frames.MazeCard
		v.Results.Warnings = append(v.Results.Warnings,
			"card type maze-cards is declared but not implemented yet")
	default:
		// Unknown type already reported; nothing to check a frame for.
		return
	}

	if _, err := os.Stat(framePath); os.IsNotExist(err) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("frame image not found: %s", framePath))
		return
	}

	if _, err := imaging.Open(framePath); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("frame image %s does not decode: %v", framePath, err))
	}
}

func (v *Validator) validateCSV() {
	fp, err := os.Open(v.Config.CSVPath)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("cannot open input file %s: %v", v.Config.CSVPath, err))
		return
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("input file %s has no readable header row: %v", v.Config.CSVPath, err))
		return
	}

	present := map[string]bool{}
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}

	for _, col := range item.RequiredColumns {
		if !present[col] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("input file %s is missing required column %q", v.Config.CSVPath, col))
		}
	}
}

func (v *Validator) validateOutputDir() {
	info, err := os.Stat(v.Config.OutputDir)
	if os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("output directory %s does not exist; saves will fail until it is created", v.Config.OutputDir))
		return
	}
	if err == nil && !info.IsDir() {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("output path %s is not a directory", v.Config.OutputDir))
	}
}

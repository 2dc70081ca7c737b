package fontset

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Tier is one of the four fixed font-size categories used on a card.
type Tier string

const (
	TierTitle  Tier = "title"
	TierLarge  Tier = "large"
	TierNormal Tier = "normal"
	TierSmall  Tier = "small"
)

// tierSizes maps each tier to its pixel size at 72 DPI.
var tierSizes = map[Tier]float64{
	TierTitle:  40,
	TierLarge:  30,
	TierNormal: 25,
	TierSmall:  20,
}

// Size returns the pixel size of a tier, or 0 for an unknown tier.
func Size(t Tier) float64 {
	return tierSizes[t]
}

// Set holds the loaded faces for both text styles, keyed by tier.
// The regular font file serves as the bold cut and the italic file
// as the italic cut.
type Set struct {
	Bold   map[Tier]font.Face
	Italic map[Tier]font.Face
}

// Load reads the two font files and builds the tier lookups.
// Any missing or malformed font file is a fatal setup error for the caller.
func Load(regularPath, italicPath string) (*Set, error) {
	regular, err := os.ReadFile(regularPath)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", regularPath, err)
	}

	italic, err := os.ReadFile(italicPath)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", italicPath, err)
	}

	return FromBytes(regular, italic)
}

// FromBytes builds the tier lookups from raw TTF/OTF data.
func FromBytes(regular, italic []byte) (*Set, error) {
	bold, err := facesFor(regular)
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}

	ital, err := facesFor(italic)
	if err != nil {
		return nil, fmt.Errorf("italic font: %w", err)
	}

	return &Set{Bold: bold, Italic: ital}, nil
}

// facesFor parses one font file and creates a face per tier.
func facesFor(data []byte) (map[Tier]font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	faces := make(map[Tier]font.Face, len(tierSizes))
	for tier, size := range tierSizes {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s face at %.0fpx: %w", tier, size, err)
		}
		faces[tier] = face
	}

	return faces, nil
}

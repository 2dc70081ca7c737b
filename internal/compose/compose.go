package compose

import (
	"errors"
	"fmt"

	"github.com/kresadlo/cardforge/internal/card"
	"github.com/kresadlo/cardforge/internal/config"
	"github.com/kresadlo/cardforge/internal/fontset"
	"github.com/kresadlo/cardforge/internal/item"
)

var (
	// ErrUnknownCardType is returned for a selector no composer answers to.
	ErrUnknownCardType = errors.New("unknown card type")

	// ErrUnsupportedCardType is returned by declared composers whose
	// layout has not been designed yet.
	ErrUnsupportedCardType = errors.New("card type not implemented")
)

// Composer renders one input row into a card, without saving it.
type Composer func(cfg *config.Config, fonts *fontset.Set, it item.Item) (*card.Card, error)

// For resolves a card type selector. Called once per batch, before any
// row or input file is touched.
func For(cardType string) (Composer, error) {
	switch cardType {
	case "magical-items":
		return MagicalItem, nil
	case "maze-cards":
		return MazeCard, nil
	case "aspect-cards":
		return AspectCard, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCardType, cardType)
	}
}

// magicalItemSpace is the reserved bottom margin of the item frame.
const magicalItemSpace = 100

// MagicalItem lays out a magical item card: kicker, title, optional
// set-membership line, mechanic text, then flavor text.
func MagicalItem(cfg *config.Config, fonts *fontset.Set, it item.Item) (*card.Card, error) {
	c, err := card.New(cfg.Frames.MagicalItem, fonts, magicalItemSpace)
	if err != nil {
		return nil, err
	}

	if err := c.AddText("Magický předmět", card.StyleItalic, card.SizeNormal); err != nil {
		return nil, err
	}
	if err := c.AddTitle(it.Name); err != nil {
		return nil, err
	}
	if it.InSet {
		line := fmt.Sprintf("Patří do setu: %s  [%s]", it.Set, it.SetCount)
		if err := c.AddText(line, card.StyleItalic, card.SizeSmall); err != nil {
			return nil, err
		}
	}
	if err := c.AddText(it.Mechanic, card.StyleBold, card.SizeLarge); err != nil {
		return nil, err
	}
	if err := c.AddText(it.Legend, card.StyleItalic, card.SizeLarge); err != nil {
		return nil, err
	}

	return c, nil
}

// MazeCard is a declared entry point whose layout is still to be designed.
// It fails clearly instead of producing a blank card.
func MazeCard(cfg *config.Config, fonts *fontset.Set, it item.Item) (*card.Card, error) {
	return nil, fmt.Errorf("%w: maze-cards", ErrUnsupportedCardType)
}

// AspectCard is a declared entry point whose layout is still to be designed.
func AspectCard(cfg *config.Config, fonts *fontset.Set, it item.Item) (*card.Card, error) {
	return nil, fmt.Errorf("%w: aspect-cards", ErrUnsupportedCardType)
}

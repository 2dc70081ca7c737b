package card

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/kresadlo/cardforge/internal/fontset"
)

// Text styles and size hints accepted by AddText.
const (
	StyleBold   = "bold"
	StyleItalic = "italic"

	SizeSmall  = "small"
	SizeNormal = "normal"
	SizeLarge  = "large"
)

var (
	// ErrTitleAlreadySet is returned when AddTitle is called twice on one card.
	ErrTitleAlreadySet = errors.New("title already set")

	// ErrUnknownStyle is returned for a style other than "bold" or "italic".
	ErrUnknownStyle = errors.New("unknown text style")
)

// OverflowError reports a line that would land below the card's
// reserved bottom space. Lines drawn before it stay on the canvas.
type OverflowError struct {
	Line string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("text does not fit on the card: %q", e.Line)
}

// Vertical layout constants, in pixels.
const (
	startY          = 20
	lineHeight      = 30
	blankLineHeight = 40
)

// Card is a mutable drawing surface for one rendered card. The vertical
// cursor only moves down; the title can be set once.
type Card struct {
	img    *image.NRGBA
	width  int
	height int
	ratio  float64
	fonts  *fontset.Set
	space  int
	y      int
	title  string
}

// New opens the frame image and prepares a fresh canvas over it.
// space is the reserved bottom margin below which no text may be drawn.
func New(framePath string, fonts *fontset.Set, space int) (*Card, error) {
	frame, err := imaging.Open(framePath)
	if err != nil {
		return nil, fmt.Errorf("opening frame %s: %w", framePath, err)
	}

	img := imaging.Clone(frame)
	bounds := img.Bounds()

	return &Card{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
		ratio:  float64(bounds.Dx()) / float64(bounds.Dy()),
		fonts:  fonts,
		space:  space,
		y:      startY,
	}, nil
}

// Image returns the composed canvas.
func (c *Card) Image() image.Image {
	return c.img
}

// FileName returns the output file name derived from the title,
// with spaces replaced by underscores.
func (c *Card) FileName() string {
	return fmt.Sprintf("card_%s.png", c.title)
}

// AddTitle draws the title centered under the title-tier bold face and
// advances the cursor by one blank line. A card takes exactly one title.
func (c *Card) AddTitle(title string) error {
	if c.title != "" {
		return ErrTitleAlreadySet
	}

	face := c.fonts.Bold[fontset.TierTitle]
	width := font.MeasureString(face, title).Ceil()
	c.drawLine(title, face, (c.width-width)/2, c.y)

	c.y += blankLineHeight
	c.title = strings.ReplaceAll(title, " ", "_")

	return nil
}

// chooseFont picks the face and the per-line character budget for a text
// block. Long text is demoted to a smaller tier regardless of the hint.
// The result depends only on text length, style, hint and aspect ratio.
func (c *Card) chooseFont(text, style, size string) (font.Face, int, error) {
	var byTier map[fontset.Tier]font.Face
	switch style {
	case StyleBold:
		byTier = c.fonts.Bold
	case StyleItalic:
		byTier = c.fonts.Italic
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	length := utf8.RuneCountInString(text)
	switch {
	case length > int(150*c.ratio) || size == SizeSmall:
		return byTier[fontset.TierSmall], int(50 * c.ratio), nil
	case length > int(100*c.ratio) || size == SizeNormal:
		return byTier[fontset.TierNormal], int(40 * c.ratio), nil
	default:
		// The "large" hint keeps the normal face; only the budget differs.
		return byTier[fontset.TierNormal], int(30 * c.ratio), nil
	}
}

// AddText wraps a text block to its character budget and draws each line
// centered, moving the cursor down line by line. A line that would cross
// into the reserved bottom space fails the whole block; lines already
// drawn are not rolled back.
func (c *Card) AddText(text, style, size string) error {
	face, budget, err := c.chooseFont(text, style, size)
	if err != nil {
		return err
	}

	for _, line := range wrapText(text, budget) {
		c.y += lineHeight
		if c.y > c.height-c.space {
			return &OverflowError{Line: line}
		}

		width := font.MeasureString(face, line).Ceil()
		c.drawLine(line, face, (c.width-width)/2, c.y)
	}

	c.y += blankLineHeight

	return nil
}

// drawLine paints one line of black text with its top edge at y.
func (c *Card) drawLine(s string, face font.Face, x, y int) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// Save writes the canvas to <dir>/card_<title>.png and returns the path.
func (c *Card) Save(dir string) (string, error) {
	path := filepath.Join(dir, c.FileName())
	if err := imaging.Save(c.img, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// wrapText wraps text into lines of at most width runes, breaking at word
// boundaries. A word longer than the budget is hard-broken into width-sized
// rune chunks, without hyphenation, so no line ever exceeds the budget.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var words []string
	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			runes := []rune(word)
			words = append(words, string(runes[:width]))
			word = string(runes[width:])
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil
	}

	var result []string
	var currentLine string

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case utf8.RuneCountInString(currentLine)+1+utf8.RuneCountInString(word) <= width:
			currentLine += " " + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

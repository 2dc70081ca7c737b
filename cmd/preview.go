package cmd

import (
	"fmt"
	"image"
	"image/color" // This is the standard library color package
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"

	colorize "github.com/fatih/color" // Rename this import to avoid the conflict
	"github.com/spf13/cobra"

	"github.com/kresadlo/cardforge/internal/compose"
	"github.com/kresadlo/cardforge/internal/config"
	"github.com/kresadlo/cardforge/internal/fontset"
	"github.com/kresadlo/cardforge/internal/item"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render one row and display it as ANSI art in the terminal",
	Long: `Preview renders a single card in memory, without writing any file, and
displays it as truecolor half-block ANSI art next to the row's fields.

Select the row by its 1-based position or by the card's name.

Examples:
  cardforge preview --row 3
  cardforge preview --name "Ring of Fire"`,
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

		composer, err := compose.For(cfg.CardType)
		if err != nil {
			return err
		}

		fonts, err := fontset.Load(cfg.Fonts.Regular, cfg.Fonts.Italic)
		if err != nil {
			return err
		}

		items, err := item.LoadCSV(cfg.CSVPath)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("no rows in %s", cfg.CSVPath)
		}

		it, err := pickItem(cmd, items)
		if err != nil {
			return err
		}

		c, err := composer(cfg, fonts, it)
		if err != nil {
			return fmt.Errorf("error rendering card: %v", err)
		}

		displayItem(it, imageToAnsi(c.Image(), 36), cfg.CardType)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Int("row", 1, "1-based row number to preview")
	previewCmd.Flags().String("name", "", "preview the row with this card name instead")
	previewCmd.Flags().String("csv_path", "", "path to the card data .csv file")
	previewCmd.Flags().String("card_type", "", "magical-items or maze-cards")
	previewCmd.Flags().String("config", "", "path to a config file (default: ./cardforge.toml if present)")
}

// pickItem resolves the --name or --row selection against the loaded rows.
func pickItem(cmd *cobra.Command, items []item.Item) (item.Item, error) {
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		for _, it := range items {
			if it.Name == name {
				return it, nil
			}
		}
		return item.Item{}, fmt.Errorf("no row named %q", name)
	}

	row, _ := cmd.Flags().GetInt("row")
	if row < 1 || row > len(items) {
		return item.Item{}, fmt.Errorf("row %d out of range (1-%d)", row, len(items))
	}
	return items[row-1], nil
}

// imageToAnsi converts a card image to truecolor ANSI art of the given
// character width, using upper half blocks so each cell carries two pixels.
func imageToAnsi(img image.Image, width int) string {
	bounds := img.Bounds()
	ratio := float64(bounds.Dx()) / float64(bounds.Dy())
	height := int(float64(width) / ratio / 2)
	if height < 1 {
		height = 1
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Get the four pixels that will make up one character cell
			c1 := getColorAt(resized, x, y)
			c2 := getColorAt(resized, x+1, y)
			c3 := getColorAt(resized, x, y+1)
			c4 := getColorAt(resized, x+1, y+1)

			col1, _ := colorful.MakeColor(c1)
			col2, _ := colorful.MakeColor(c2)
			col3, _ := colorful.MakeColor(c3)
			col4, _ := colorful.MakeColor(c4)

			// Top pixels as foreground, bottom pixels as background
			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // Return black for out-of-bounds
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.Color {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// ansiColorString formats a character with truecolor ANSI codes
func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// Convert from uint32 to uint8 (RGBA() returns values in range 0-65535)
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// wrapPlain wraps plain terminal text to a specified width
func wrapPlain(text string, width int) []string {
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayItem prints the ANSI art with the row's fields beside it
func displayItem(it item.Item, ansiArt, cardType string) {
	ansiLines := strings.Split(ansiArt, "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		// Visible width excludes ANSI escape sequences
		if w := len(stripAnsi(line)); w > maxAnsiWidth {
			maxAnsiWidth = w
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing

	infoWidth := width - infoStartCol - 2 // Leave a small margin
	if infoWidth < 20 {
		infoWidth = 20
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString(it.Name))
	infoLines = append(infoLines, colorize.CyanString("Type: ")+colorize.HiWhiteString(cardType))
	if it.InSet {
		infoLines = append(infoLines, colorize.CyanString("Set:  ")+
			colorize.HiWhiteString("%s [%s]", it.Set, it.SetCount))
	}

	if it.Mechanic != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Mechanic:"))
		infoLines = append(infoLines, wrapPlain(it.Mechanic, infoWidth)...)
	}

	if it.Legend != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Legend:"))
		infoLines = append(infoLines, wrapPlain(it.Legend, infoWidth)...)
	}

	fmt.Println()

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(ansiLines) {
			fmt.Print(ansiLines[i])
			visibleWidth := len(stripAnsi(ansiLines[i]))
			fmt.Print(strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Package color provides the 24-bit color value used throughout appcolors.
//
// Colors are stored as 0xRRGGBB integers, the way platform theme resources
// report them. They encode as "#RRGGBB" text in JSON and YAML.
//
// # Reserved values
//
// Three values never count as a resolved application color:
//   - 0: the theme/resource system reports unset attributes as zero
//   - #F5F5F5: the light grey placeholder many launchers and templates use
//   - #212121: the dark grey placeholder of the same templates
//
// Use [RGB.IsValid] to test for them.
//
// # Conversions
//
// HSL and perceptual lightness are computed with go-colorful. Terminal
// rendering of a color as a swatch block is done with lipgloss, see
// [Swatch] and [Contrast].
//
// # Usage Example
//
//	c, err := color.ParseHex("#3F51B5")
//	if err != nil {
//	    return err
//	}
//	if c.IsValid() {
//	    fmt.Println(color.Swatch(c, 4), c.Hex())
//	}
package color

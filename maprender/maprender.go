package maprender

// Draws a map layer as a picture, one tile per scale x scale block, with optional colony labels.

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
	"unicode"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"coldump/types"
)

const LINE_HEIGHT = 13 // because hard-coded basicfont.Face7x13

// Palette is indexed by display tile: land is 0-7, water 9-16
type Palette [17]color.RGBA

var Default_palette = Palette{
	/*  0 */ {0xa0, 0xa0, 0x90, 0xff},
	/*  1 */ {0xd8, 0xc0, 0x78, 0xff},
	/*  2 */ {0x98, 0xc0, 0x50, 0xff},
	/*  3 */ {0xb8, 0xc8, 0x60, 0xff},
	/*  4 */ {0x60, 0xb0, 0x40, 0xff},
	/*  5 */ {0x90, 0xa8, 0x40, 0xff},
	/*  6 */ {0x70, 0x88, 0x60, 0xff},
	/*  7 */ {0x58, 0x78, 0x58, 0xff},
	/*  8 */ {0xff, 0x00, 0xff, 0xff}, // no such tile
	/*  9 */ {0x20, 0x40, 0xa0, 0xff},
	/* 10 */ {0x20, 0x48, 0xa8, 0xff},
	/* 11 */ {0x28, 0x50, 0xb0, 0xff},
	/* 12 */ {0x28, 0x58, 0xb8, 0xff},
	/* 13 */ {0x30, 0x60, 0xc0, 0xff},
	/* 14 */ {0x30, 0x68, 0xc8, 0xff},
	/* 15 */ {0x38, 0x70, 0xd0, 0xff},
	/* 16 */ {0x40, 0x78, 0xd8, 0xff},
}

type Label struct {
	X, Y int // in tiles
	Text string
}

type Options struct {
	Layer   int
	Scale   int
	Palette Palette
	Label   color.RGBA
	Labels  []Label
}

func Default_options() Options {
	return Options{Layer: 0, Scale: 4, Palette: Default_palette, Label: color.RGBA{0xff, 0xff, 0xff, 0xff}}
}

// Colour returns how one cell is drawn: its display tile's colour, darker if forested
func (p *Palette) Colour(c types.Cell) color.RGBA {
	out := p[c.Display_tile()]
	if c.Forest != 0 {
		out.R, out.G, out.B = darken(out.R), darken(out.G), darken(out.B)
	}
	return out
}

func darken(v uint8) uint8 {
	return uint8(uint16(v) * 2 / 3)
}

// Render draws one layer of m
func Render(m *types.Map, opts Options) (*image.RGBA, error) {
	if opts.Layer < 0 || opts.Layer >= types.MAP_LAYERS {
		return nil, &types.IndexError{Collection: "map layer", Index: opts.Layer, Len: types.MAP_LAYERS}
	}
	if opts.Scale < 1 {
		return nil, fmt.Errorf("map scale must be at least 1 (got %v)", opts.Scale)
	}

	small := image.NewRGBA(image.Rect(0, 0, types.MAP_WIDTH, types.MAP_HEIGHT))
	for y := range types.MAP_HEIGHT {
		for x := range types.MAP_WIDTH {
			small.SetRGBA(x, y, opts.Palette.Colour(*m.At(opts.Layer, x, y)))
		}
	}

	out := transform.Resize(small, types.MAP_WIDTH*opts.Scale, types.MAP_HEIGHT*opts.Scale, transform.NearestNeighbor)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(opts.Label),
		Face: basicfont.Face7x13,
	}
	for _, l := range opts.Labels {
		// Text sits on a baseline; put the top of the text at the top of the tile
		d.Dot = fixed.P(l.X*opts.Scale, l.Y*opts.Scale+basicfont.Face7x13.Ascent)
		d.DrawString(l.Text)
	}
	return out, nil
}

// Colony_labels labels every colony with its name
func Colony_labels(sd *types.Savegame) []Label {
	out := []Label{}
	for _, c := range sd.All_colonies() {
		out = append(out, Label{int(c.X), int(c.Y), c.Get_name()})
	}
	return out
}

// Mark draws a filled square on tile x,y, e.g. to show where the active unit is
func Mark(img draw.Image, scale int, x, y int, colour color.RGBA) {
	r := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
	draw.Draw(img, r, image.NewUniform(colour), image.Point{}, draw.Src)
}

func Save_png(filename string, img image.Image) error {
	return imgio.Save(filename, img, imgio.PNGEncoder())
}

// Colour_from_string converts an ini file colour string (e.g. "R255g128b0") into a color.RGBA
// the alpha part of RGBA just gets set to 0xff (full opacity) if omitted
// (r, g, and b get set to 0 if omitted, which means "g42" or even an empty string is technically a valid color string, but please don't do that)
func Colour_from_string(str string) (color.RGBA, error) {
	out := color.RGBA{0, 0, 0, 0xFF}

	name := rune(0)
	numstr := ""
	for _, r := range str + "!" { // +"!" is an evil way to make sure the final colour index gets processed.
		if unicode.IsDigit(r) {
			numstr += string(r)
			continue
		}
		if name != 0 {
			number, _ := strconv.Atoi(numstr)
			if number > 255 {
				number = 255
			}
			switch name {
			case 'r', 'R':
				out.R = uint8(number)
			case 'g', 'G':
				out.G = uint8(number)
			case 'b', 'B':
				out.B = uint8(number)
			case 'a', 'A':
				out.A = uint8(number)
			default:
				return out, errors.New("Unexpected colour index (not 'r', 'g', 'b' or 'a'): " + string(name))
			}
			numstr = ""
		}
		name = r
	}
	return out, nil
}

// Apply_colours overrides options from ini-style settings: "tileN" (N is a display tile) and "label"
func (opts *Options) Apply_colours(colours map[string]string) error {
	for k, v := range colours {
		col, err := Colour_from_string(v)
		if err != nil {
			return fmt.Errorf("%v: %w", k, err)
		}
		switch {
		case k == "label":
			opts.Label = col
		case strings.HasPrefix(k, "tile"):
			n, err := strconv.Atoi(strings.TrimPrefix(k, "tile"))
			if err != nil || n < 0 || n >= len(opts.Palette) {
				return fmt.Errorf("%v: no such tile", k)
			}
			opts.Palette[n] = col
		default:
			return fmt.Errorf("%v: unknown colour", k)
		}
	}
	return nil
}

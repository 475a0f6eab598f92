package maprender

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"coldump/types"
)

func Test_Render(t *testing.T) {
	m := &types.Map{}
	*m.At(0, 0, 0) = types.Cell{Tile: 2, Water: 1}
	*m.At(0, 1, 0) = types.Cell{Tile: 4, Forest: 1}
	*m.At(1, 0, 0) = types.Cell{Tile: 7}

	opts := Default_options()
	opts.Scale = 3
	img, err := Render(m, opts)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != types.MAP_WIDTH*3 || b.Dy() != types.MAP_HEIGHT*3 {
		t.Fatalf("image is %v", b)
	}

	// Water tile 2 is drawn as display tile 11, over the whole 3x3 block
	for _, p := range [][2]int{{0, 0}, {2, 2}} {
		if got := img.RGBAAt(p[0], p[1]); got != Default_palette[11] {
			t.Errorf("pixel %v: %v, want %v", p, got, Default_palette[11])
		}
	}
	forest := Default_palette[4]
	forest.R, forest.G, forest.B = darken(forest.R), darken(forest.G), darken(forest.B)
	if got := img.RGBAAt(4, 1); got != forest {
		t.Errorf("forest pixel: %v, want %v", got, forest)
	}

	opts.Layer = 1
	img, _ = Render(m, opts)
	if got := img.RGBAAt(0, 0); got != Default_palette[7] {
		t.Errorf("layer 1: %v", got)
	}

	opts.Layer = 4
	if _, err := Render(m, opts); err == nil {
		t.Error("layer 4 should not exist")
	}
}

func Test_Labels(t *testing.T) {
	sd := &types.Savegame{Colonies: make([]types.Colony, 1)}
	sd.Colonies[0].X, sd.Colonies[0].Y = 10, 10
	sd.Colonies[0].Set_name("Roanoke")
	labels := Colony_labels(sd)
	if len(labels) != 1 || labels[0] != (Label{10, 10, "Roanoke"}) {
		t.Fatalf("labels: %v", labels)
	}

	opts := Default_options()
	opts.Palette = Palette{} // everything black, so only the label can be white
	opts.Labels = labels
	img, err := Render(&sd.Map, opts)
	if err != nil {
		t.Fatal(err)
	}
	white := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == opts.Label {
				white++
				if x < 40 || y < 40 {
					t.Fatalf("label pixel at %v,%v, outside the label", x, y)
				}
			}
		}
	}
	if white == 0 {
		t.Error("label not drawn")
	}

	Mark(img, opts.Scale, 0, 0, color.RGBA{1, 2, 3, 255})
	if img.RGBAAt(3, 3) != (color.RGBA{1, 2, 3, 255}) || img.RGBAAt(4, 4) == (color.RGBA{1, 2, 3, 255}) {
		t.Error("mark in the wrong place")
	}

	filename := filepath.Join(t.TempDir(), "map.png")
	if err := Save_png(filename, img); err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(filename); err != nil || st.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func Test_Colours(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"r255g128b0", color.RGBA{255, 128, 0, 255}},
		{"R1G2B3A4", color.RGBA{1, 2, 3, 4}},
		{"b999", color.RGBA{0, 0, 255, 255}},
	}
	for _, tc := range cases {
		got, err := Colour_from_string(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%q: %v (%v), want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := Colour_from_string("x12"); err == nil {
		t.Error("x is not a colour")
	}

	opts := Default_options()
	err := opts.Apply_colours(map[string]string{"tile9": "r1g2b3", "label": "r9"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Palette[9] != (color.RGBA{1, 2, 3, 255}) || opts.Label != (color.RGBA{9, 0, 0, 255}) {
		t.Errorf("colours not applied: %v %v", opts.Palette[9], opts.Label)
	}
	for _, bad := range []map[string]string{{"tile17": "r1"}, {"sky": "b200"}, {"label": "q1"}} {
		if err := opts.Apply_colours(bad); err == nil {
			t.Errorf("%v should be refused", bad)
		}
	}
}

package cli

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/render/background"
	"github.com/kanau/tetracard/pkg/render/sink"
)

// backgroundSpecs maps generator names onto their canvas geometry. Tiles are
// 512x512, full-screen lighting effects 1920x1080, the corner accent 256x256,
// matching the shipped asset set.
var backgroundSpecs = map[string]struct {
	w, h     int
	generate func(w, h int, seed int64) *image.NRGBA
}{
	"carbon": {512, 512, background.CarbonWeave},
	"hexgrid": {512, 512, func(w, h int, seed int64) *image.NRGBA {
		return background.HexGrid(w, h, 30, 2, color.NRGBA{R: 0, G: 120, B: 180, A: 100})
	}},
	"techlines": {512, 512, func(w, h int, seed int64) *image.NRGBA {
		return background.TechLines(w, h, 30, seed)
	}},
	"circuit": {512, 512, func(w, h int, seed int64) *image.NRGBA {
		return background.CircuitTrace(w, h, 40, seed)
	}},
	"noise": {512, 512, background.Noise},
	"glow": {1920, 1080, func(w, h int, seed int64) *image.NRGBA {
		return background.RadialGlow(w, h)
	}},
	"edgelight": {1920, 1080, func(w, h int, seed int64) *image.NRGBA {
		return background.EdgeLight(w, h)
	}},
	"sparkle": {512, 512, func(w, h int, seed int64) *image.NRGBA {
		return background.Sparkle(w, h, 50, seed)
	}},
	"lensflare": {1920, 1080, func(w, h int, seed int64) *image.NRGBA {
		return background.LensFlare(w, h)
	}},
	"grid": {512, 512, func(w, h int, seed int64) *image.NRGBA {
		return background.GridOverlay(w, h, 32)
	}},
	"corner": {256, 256, func(w, h int, seed int64) *image.NRGBA {
		return background.CornerAccent(w, h)
	}},
}

func backgroundNames() []string {
	names := make([]string, 0, len(backgroundSpecs))
	for name := range backgroundSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// backgroundCommand creates the "background" command generating standalone
// pattern and effect images.
func (c *CLI) backgroundCommand() *cobra.Command {
	var (
		dir  string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "background <name|all>",
		Short: "Generate background pattern and effect images",
		Long: `Generate a procedural background image, or the full set with "all".

Available: ` + strings.Join(backgroundNames(), ", ") + `.

Randomized patterns accept --seed for reproducible output; seed 0 derives
one from the clock.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: append(backgroundNames(), "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{args[0]}
			if args[0] == "all" {
				names = backgroundNames()
			} else if _, ok := backgroundSpecs[args[0]]; !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown background %q (available: %s)",
					args[0], strings.Join(backgroundNames(), ", "))
			}

			p := newProgress(c.Logger)
			for _, name := range names {
				spec := backgroundSpecs[name]
				img := spec.generate(spec.w, spec.h, seed)

				path := filepath.Join(dir, name+".png")
				if err := sink.EncodeFile(path, img); err != nil {
					return err
				}
				printFile(path)
			}
			p.done(fmt.Sprintf("Generated %d background(s)", len(names)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for randomized patterns")
	return cmd
}

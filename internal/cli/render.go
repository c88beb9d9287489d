package cli

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/render/sink"
)

// renderOpts holds the command-line flags shared by the card commands.
type renderOpts struct {
	output  string // output file path; empty derives one from the subject
	format  string // "png" or "jpeg"; empty uses the config default
	quality int    // jpeg quality; 0 uses the config default
	input   string // local JSON fixture instead of the live API
}

// registerRenderFlags wires the shared card flags onto cmd.
func registerRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), jpeg")
	cmd.Flags().IntVarP(&opts.quality, "quality", "q", 0, "jpeg quality 1-100")
	cmd.Flags().StringVar(&opts.input, "input", "", "render from a local JSON fixture instead of the API")
}

// resolveEncoding merges flags over config defaults and validates the format.
func resolveEncoding(cfg *Config, opts *renderOpts) (sink.Format, int, error) {
	name := opts.format
	if name == "" {
		name = cfg.Render.Format
	}
	format, err := sink.ParseFormat(name)
	if err != nil {
		return "", 0, err
	}

	quality := opts.quality
	if quality == 0 {
		quality = cfg.Render.Quality
	}
	return format, quality, nil
}

// writeCard encodes img to the chosen output path and reports it.
func writeCard(cfg *Config, opts *renderOpts, img image.Image, defaultName string) error {
	format, quality, err := resolveEncoding(cfg, opts)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		ext := "png"
		if format == sink.JPEG {
			ext = "jpg"
		}
		path = fmt.Sprintf("%s.%s", defaultName, ext)
	}

	if err := sink.EncodeFile(path, img, sink.WithFormat(format), sink.WithQuality(quality)); err != nil {
		return err
	}

	printSuccess("Card rendered")
	printFile(path)
	return nil
}

// loadFixture decodes a local JSON file into v, for offline rendering.
func loadFixture(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}

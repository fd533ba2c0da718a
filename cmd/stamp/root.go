package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/code-100-precent/LingStamp/cmd/bootstrap"
	"github.com/code-100-precent/LingStamp/internal/prompt"
	"github.com/code-100-precent/LingStamp/internal/stamp"
	"github.com/code-100-precent/LingStamp/pkg/config"
	"github.com/code-100-precent/LingStamp/pkg/image"
	"github.com/code-100-precent/LingStamp/pkg/logger"
)

type options struct {
	configDir string
	mode      string
	text      string
	size      string
	color     string
	position  string
	font      string
	quality   int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "stamp [image]",
		Short: "Stamp the capture date or a custom text onto a photo",
		Long: `Stamp writes a text watermark onto a copy of an image. The text defaults to
the EXIF capture date, or today's date when the photo has none. The result
is saved as <dir>/<dir name>_watermark/<name>_watermark.jpg.

Without an image argument the command asks for every setting interactively.
Flags that are set skip the matching question.`,
		Example: `  stamp
  stamp /photos/trip/img1.jpg --position bottom-right --color 255,255,0,200
  stamp scan.png --text "CONFIDENTIAL" --size 48`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir, "directory holding an optional config.yaml")
	flags.StringVar(&opts.mode, "mode", "", "running environment (development, production)")
	flags.StringVarP(&opts.text, "text", "t", "", "custom watermark text (default: capture date)")
	flags.StringVarP(&opts.size, "size", "s", "", fmt.Sprintf("font size in pixels (default %d)", image.DefaultFontSize))
	flags.StringVarP(&opts.color, "color", "c", "", "text color as R,G,B[,alpha] (default 255,255,255,150)")
	flags.StringVarP(&opts.position, "position", "p", "", "1-5 or top-left, top-right, bottom-left, bottom-right, center")
	flags.StringVar(&opts.font, "font", "", "TrueType font file (default: embedded Go Bold)")
	flags.IntVarP(&opts.quality, "quality", "q", 0, "JPEG quality 1-100 (default from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	// 1. Load Configuration
	cfg, err := config.LoadFrom(opts.configDir)
	if err != nil {
		return err
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	config.GlobalConfig = cfg

	// 2. Init Logger
	if err := logger.Init(&cfg.Log, cfg.Mode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	// 3. Print Configuration
	bootstrap.LogConfigInfo(cfg)

	// 4. Build Composer
	fontPath := cfg.FontPath
	if opts.font != "" {
		fontPath = opts.font
	}
	renderer, err := image.LoadTextRenderer(fontPath)
	if err != nil {
		logger.Error("load font failed", zap.String("font", fontPath), zap.Error(err))
		return err
	}
	quality := cfg.Quality
	if cmd.Flags().Changed("quality") {
		quality = opts.quality
	}
	composer, err := stamp.NewComposer(stamp.Options{
		Formats:  cfg.Formats,
		Quality:  quality,
		Renderer: renderer,
	})
	if err != nil {
		return err
	}

	// 5. Collect Input
	var (
		path  string
		input stamp.StyleInput
	)
	if len(args) == 1 {
		path = args[0]
		if err := composer.Validate(path); err != nil {
			logger.Error("invalid image", zap.String("path", path), zap.Error(err))
			return err
		}
		input = stamp.StyleInput{
			Text:     composer.ResolveText(path, opts.text),
			FontSize: opts.size,
			Color:    opts.color,
			Position: opts.position,
		}
	} else {
		bootstrap.PrintBanner(cmd.OutOrStdout(), bootstrap.Banner, false)
		path, input, err = ask(cmd, opts, composer)
		if err != nil {
			return err
		}
	}

	// 6. Compose
	out, err := composer.Compose(path, stamp.ParseStyle(input))
	if err != nil {
		logger.Error("watermark failed", zap.String("path", path), zap.Error(err))
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Watermark added.")
	fmt.Fprintf(w, "Saved to: %s\n", out)
	return nil
}

// ask runs the interactive session. Flags the user already set are not
// asked again.
func ask(cmd *cobra.Command, opts *options, composer *stamp.Composer) (string, stamp.StyleInput, error) {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	flags := cmd.Flags()
	input := stamp.StyleInput{
		FontSize: opts.size,
		Color:    opts.color,
		Position: opts.position,
	}

	path, err := p.ImagePath()
	if err != nil {
		return "", input, err
	}
	if err := composer.Validate(path); err != nil {
		logger.Error("invalid image", zap.String("path", path), zap.Error(err))
		return "", input, err
	}

	input.Text = composer.ResolveText(path, opts.text)
	if !flags.Changed("text") {
		custom, err := p.Text(input.Text)
		if err != nil {
			return "", input, err
		}
		if custom != "" {
			input.Text = custom
		}
	}

	questions := []struct {
		flag string
		dst  *string
		ask  func() (string, error)
	}{
		{"size", &input.FontSize, func() (string, error) { return p.FontSize(image.DefaultFontSize) }},
		{"color", &input.Color, p.Color},
		{"position", &input.Position, p.Position},
	}
	for _, q := range questions {
		if flags.Changed(q.flag) {
			continue
		}
		answer, err := q.ask()
		if err != nil {
			return "", input, err
		}
		*q.dst = answer
	}
	return path, input, nil
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"lantern/internal/bundle"
	"lantern/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <bundle>...",
	Short: "Render diagnostic bundles as source-anchored text",
	Long:  `Render one or more diagnostic bundles (.json or .lrb) produced by a compiler front end into styled, source-anchored output`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("charset", "", "border charset (ascii|unicode)")
	renderCmd.Flags().String("style", "", "display style (default|comfortable|compact)")
	renderCmd.Flags().String("output", "stdout", "output sink (stdout|stderr|<path>)")
	renderCmd.Flags().String("config", "", "path to lantern.toml with render defaults")
	renderCmd.Flags().Int("jobs", 0, "max parallel bundle renders (0=auto)")
}

// renderConfig mirrors the [render] table of lantern.toml.
type renderConfig struct {
	Render struct {
		Color   string `toml:"color"`
		Charset string `toml:"charset"`
		Style   string `toml:"style"`
	} `toml:"render"`
}

// loadRenderConfig reads option defaults from lantern.toml. An explicitly
// given path must exist; the implicit ./lantern.toml may be absent.
func loadRenderConfig(path string) (renderConfig, error) {
	var cfg renderConfig

	implicit := path == ""
	if implicit {
		path = "lantern.toml"
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if implicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// optionValue resolves one option with flag > config file > built-in
// precedence.
func optionValue(cmd *cobra.Command, flag, fromConfig string) (string, error) {
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", flag, err)
	}
	if v == "" {
		return fromConfig, nil
	}
	return v, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadRenderConfig(configPath)
	if err != nil {
		return err
	}

	colorStr, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorStr == "" {
		colorStr = cfg.Render.Color
	}
	charsetStr, err := optionValue(cmd, "charset", cfg.Render.Charset)
	if err != nil {
		return err
	}
	styleStr, err := optionValue(cmd, "style", cfg.Render.Style)
	if err != nil {
		return err
	}

	colors, err := render.ParseColorChoice(colorStr)
	if err != nil {
		return err
	}
	charset, err := render.ParseCharset(charsetStr)
	if err != nil {
		return err
	}
	style, err := render.ParseStyle(styleStr)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	sink, closeSink, err := openSink(output)
	if err != nil {
		return err
	}
	defer closeSink()

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	// Bundles render concurrently into private buffers; the shared sink is
	// written strictly in argument order afterwards.
	colors = pinColors(colors, sink)
	bufs := make([]bytes.Buffer, len(args))
	failed := make([]bool, len(args))

	g := new(errgroup.Group)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			b, err := bundle.Decode(path)
			if err != nil {
				return err
			}
			builder := render.New(b.Map()).
				WithColors(colors).
				WithCharset(charset).
				WithStyle(style)
			if err := builder.Render(&bufs[i], b.Collection()...); err != nil {
				return fmt.Errorf("render %s: %w", path, err)
			}
			for _, r := range b.Collection() {
				if r.HasErrors() {
					failed[i] = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		cmd.SilenceUsage = true
		return err
	}

	for i := range bufs {
		if _, err := sink.Write(bufs[i].Bytes()); err != nil {
			cmd.SilenceUsage = true
			return fmt.Errorf("write output: %w", err)
		}
	}

	for _, f := range failed {
		if f {
			closeSink()
			os.Exit(1)
		}
	}
	return nil
}

// pinColors fixes an Auto choice against the real sink before the renders
// go through in-memory buffers, which would otherwise always resolve to no
// color.
func pinColors(colors render.ColorChoice, sink io.Writer) render.ColorChoice {
	if colors != render.ColorAuto {
		return colors
	}
	if f, ok := sink.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return render.ColorAlways
	}
	return render.ColorNever
}

// openSink maps the --output value to a writer. The returned func closes
// file sinks and is a no-op for the process streams.
func openSink(output string) (io.Writer, func(), error) {
	switch output {
	case "stdout", "":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", output, err)
	}
	return f, func() { _ = f.Close() }, nil
}

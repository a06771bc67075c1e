package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/bishop/internal/analysis"
	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/config"
	"github.com/san-kum/bishop/internal/export"
	"github.com/san-kum/bishop/internal/input"
	"github.com/san-kum/bishop/internal/logging"
	"github.com/san-kum/bishop/internal/storage"
	"github.com/san-kum/bishop/internal/tui"
	"github.com/san-kum/bishop/internal/viz"
	"github.com/spf13/cobra"
)

const svgCell = 24

// loadConfig merges the config file, the preset and any flags set on the
// command line, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("chars") {
		cfg.Chars = chars
	}
	if flags.Changed("top") {
		cfg.Top = top
	}
	if flags.Changed("bot") {
		cfg.Bottom = bottom
	}
	if flags.Changed("type") {
		cfg.Input = inputType
	}
	if flags.Changed("hash") {
		cfg.Hash = hashAlg
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quiet
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	} else if color && cfg.Theme == config.DefaultTheme {
		cfg.Theme = viz.ThemeOcean.Name
	}
	if !flags.Changed("log-level") && cfg.LogLevel != logLevel {
		logging.Setup(cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Theme != "" && cfg.Theme != config.DefaultTheme {
		if _, ok := viz.GetTheme(cfg.Theme); !ok {
			return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
		}
	}
	return cfg, nil
}

// source is an opened input and the description stored with its result.
type source struct {
	r     io.ByteReader
	rec   storage.Record
	close func() error
}

// openInput resolves the positional hex fingerprint or the -s / -i
// stream. Exactly one of them must be given.
func openInput(cmd *cobra.Command, args []string, cfg *config.Config) (*source, error) {
	stream := fromStdin || inputFile != ""
	if len(args) > 0 {
		if stream {
			return nil, errors.New("give either a hex fingerprint or -s / -i, not both")
		}
		if cmd.Flags().Changed("type") {
			return nil, errors.New("-I only applies to -s / -i input")
		}
		data, err := input.DecodeHex(args[0])
		if err != nil {
			return nil, err
		}
		if !cfg.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint of:\n%s\n\n", args[0])
		}
		return &source{
			r:     bytes.NewReader(data),
			rec:   storage.Record{Input: string(input.Hex), Source: args[0]},
			close: func() error { return nil },
		}, nil
	}
	if !stream {
		return nil, errors.New("no input: give a hex fingerprint, -s or -i file")
	}
	if fromStdin && inputFile != "" {
		return nil, errors.New("give either -s or -i, not both")
	}

	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	closer := func() error { return nil }
	if inputFile != "" && inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, err
		}
		r, name, closer = f, inputFile, f.Close
	}

	t := cfg.InputType()
	src, err := input.Open(t, cfg.Algorithm(), r)
	if err != nil {
		closer()
		return nil, err
	}
	rec := storage.Record{Input: string(t), Source: name}
	if t == input.Hash {
		rec.Hash = string(cfg.Algorithm())
	}
	return &source{r: src, rec: rec, close: closer}, nil
}

// walk opens the input and runs it through a fresh field.
func walk(cmd *cobra.Command, args []string, cfg *config.Config) (*bishop.Result, storage.Record, error) {
	src, err := openInput(cmd, args, cfg)
	if err != nil {
		return nil, storage.Record{}, err
	}
	defer src.close()

	art, err := bishop.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, storage.Record{}, err
	}
	if logging.Enabled(zerolog.TraceLevel) {
		art.AddObserver(bishop.ObserverFunc(func(s bishop.Step) {
			log.Trace().Int("step", s.Index).Int("x", s.X).Int("y", s.Y).Int("value", s.Value).Msg("move")
		}))
	}
	n, err := art.Consume(src.r)
	if err != nil {
		return nil, storage.Record{}, fmt.Errorf("reading %s: %w", src.rec.Source, err)
	}
	res, err := art.Result()
	if err != nil {
		return nil, storage.Record{}, err
	}

	rec := src.rec
	rec.Bytes = n
	rec.Chars, rec.Top, rec.Bottom = cfg.Chars, cfg.Top, cfg.Bottom
	log.Debug().Str("input", rec.Input).Str("source", rec.Source).Int64("bytes", n).
		Int("steps", art.Steps()).Msg("walk finished")
	return res, rec, nil
}

// render draws res as plain text, or painted when a theme is active.
func render(res *bishop.Result, opts bishop.Options, themeName string) (string, error) {
	if th, ok := viz.GetTheme(themeName); ok {
		return viz.NewPainter(nil, th).Paint(res, opts)
	}
	return res.Draw(opts)
}

func writeSVG(path string, res *bishop.Result, opts bishop.Options) error {
	svg, err := export.ResultToSVG(res, opts, svgCell)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func saveResult(cmd *cobra.Command, cfg *config.Config, rec storage.Record, res *bishop.Result) error {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(rec, res)
	if err != nil {
		return err
	}
	log.Info().Str("id", id).Str("dir", cfg.DataDir).Msg("saved art")
	fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", id)
	return nil
}

func drawArt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	res, rec, err := walk(cmd, args, cfg)
	if err != nil {
		return err
	}

	art, err := render(res, opts, cfg.Theme)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), art)

	if svgPath != "" {
		if err := writeSVG(svgPath, res, opts); err != nil {
			return err
		}
		log.Info().Str("path", svgPath).Msg("wrote svg")
	}
	if save {
		return saveResult(cmd, cfg, rec, res)
	}
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, _, err := walk(cmd, args, cfg)
	if err != nil {
		return err
	}

	s := analysis.Compute(res)
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "size\t%dx%d\n", res.Width(), res.Height())
	fmt.Fprintf(w, "visited\t%d/%d (%.1f%%)\n", s.Visited, s.Cells, s.Coverage*100)
	fmt.Fprintf(w, "max count\t%d\n", s.MaxCount)
	fmt.Fprintf(w, "entropy\t%.4f bits\n", s.Entropy)
	fmt.Fprintf(w, "start\t(%d, %d)\n", s.Start[0], s.Start[1])
	fmt.Fprintf(w, "end\t(%d, %d)\n", s.End[0], s.End[1])
	fmt.Fprintf(w, "distance\t%d\n", s.Distance)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, analysis.PlotHistogram(s))
	return nil
}

func watchWalk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	th, ok := viz.GetTheme(cfg.Theme)
	if !ok {
		th = viz.ThemeOcean
	}

	src, err := openInput(cmd, args, cfg)
	if err != nil {
		return err
	}
	defer src.close()

	var data []byte
	for {
		b, err := src.r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", src.rec.Source, err)
		}
		data = append(data, b)
	}

	size := bishop.Size{W: cfg.Width, H: cfg.Height}
	res, err := tui.RunWatch(size, data, opts, th, delay)
	if err != nil {
		return err
	}
	if res == nil || !save {
		return nil
	}

	rec := src.rec
	rec.Bytes = int64(len(data))
	rec.Chars, rec.Top, rec.Bottom = cfg.Chars, cfg.Top, cfg.Bottom
	return saveResult(cmd, cfg, rec, res)
}

func listArt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved art")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tINPUT\tBYTES\tSOURCE")
	for _, r := range runs {
		in := r.Input
		if r.Hash != "" {
			in += "/" + r.Hash
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%d\t%s\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Width, r.Height, in, r.Bytes, r.Source)
	}
	return w.Flush()
}

// loadSaved loads a stored result. Palette and captions come from the
// record unless overridden on the command line.
func loadSaved(cmd *cobra.Command, id string) (*config.Config, *storage.Record, *bishop.Result, bishop.Options, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, bishop.Options{}, err
	}
	rec, res, err := storage.New(cfg.DataDir).LoadResult(id)
	if err != nil {
		return nil, nil, nil, bishop.Options{}, err
	}

	flags := cmd.Flags()
	if !flags.Changed("chars") && preset == "" {
		cfg.Chars = rec.Chars
	}
	if !flags.Changed("top") {
		cfg.Top = rec.Top
	}
	if !flags.Changed("bot") {
		cfg.Bottom = rec.Bottom
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, nil, bishop.Options{}, err
	}
	return cfg, rec, res, opts, nil
}

func showArt(cmd *cobra.Command, args []string) error {
	cfg, _, res, opts, err := loadSaved(cmd, args[0])
	if err != nil {
		return err
	}
	art, err := render(res, opts, cfg.Theme)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), art)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	id := args[0]
	_, _, res, opts, err := loadSaved(cmd, id)
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = id + ".svg"
	}
	if err := writeSVG(path, res, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported: %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	id := args[0]
	_, rec, res, opts, err := loadSaved(cmd, id)
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = id + ".json"
	}
	if err := export.ExportJSON(path, *rec, res, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported: %s\n", path)
	return nil
}

// compareArt reports how many cells two saved fields draw alike, using
// the palette of the first.
func compareArt(cmd *cobra.Command, args []string) error {
	cfg, recA, a, opts, err := loadSaved(cmd, args[0])
	if err != nil {
		return err
	}
	recB, b, err := storage.New(cfg.DataDir).LoadResult(args[1])
	if err != nil {
		return err
	}

	sim, err := analysis.Similarity(a, b, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.Size() != b.Size() {
		fmt.Fprintf(out, "sizes differ: %dx%d vs %dx%d\n", recA.Width, recA.Height, recB.Width, recB.Height)
	}
	fmt.Fprintf(out, "similarity: %.1f%%\n", sim*100)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%q\n", name, p.Width, p.Height, p.Chars)
	}
	return w.Flush()
}

func listThemes(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(append([]string{config.DefaultTheme}, viz.ThemeNames()...), "\n"))
	return nil
}

package main

import (
	"os"
	"time"

	"github.com/san-kum/bishop/internal/config"
	"github.com/san-kum/bishop/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	dataDir    string

	// input
	fromStdin bool
	inputFile string
	inputType string
	hashAlg   string
	quiet     bool

	// drawing
	width  int
	height int
	chars  string
	top    string
	bottom string
	theme  string
	color  bool

	// output
	save    bool
	svgPath string
	outPath string

	delay time.Duration
)

// main is the entry point for the bishop CLI; it exits with status 1 when
// the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bishop [hex]",
		Short: "draw OpenSSH-style randomart fingerprints",
		Long: "bishop walks the Drunken Bishop over its input and draws the\n" +
			"visited field. Give a hex fingerprint, or -s / -i file for streamed input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE:          drawArt,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a named palette and geometry")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (none, trace, debug, info, warn, error)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved art")

	pf.StringVar(&chars, "chars", "", "palette: background, counts, then start and end chars")
	pf.IntVarP(&width, "width", "w", 0, "field width")
	pf.IntVarP(&height, "height", "H", 0, "field height")
	pf.StringVarP(&top, "top", "t", "", "caption for the top frame")
	pf.StringVarP(&bottom, "bot", "b", "", "caption for the bottom frame")
	pf.StringVar(&theme, "theme", "", "color theme (see 'bishop themes')")
	pf.BoolVar(&color, "color", false, "colorize output with the ocean theme")

	addInputFlags(rootCmd)
	rootCmd.Flags().BoolVar(&save, "save", false, "store the result in the data directory")
	rootCmd.Flags().StringVar(&svgPath, "svg", "", "also write the art as SVG to this path")

	drawCmd := &cobra.Command{
		Use:   "draw [hex]",
		Short: "draw randomart (same as the root command)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawArt,
	}
	addInputFlags(drawCmd)
	drawCmd.Flags().BoolVar(&save, "save", false, "store the result in the data directory")
	drawCmd.Flags().StringVar(&svgPath, "svg", "", "also write the art as SVG to this path")

	statsCmd := &cobra.Command{
		Use:   "stats [hex]",
		Short: "show coverage and visit statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStats,
	}
	addInputFlags(statsCmd)

	watchCmd := &cobra.Command{
		Use:   "watch [hex]",
		Short: "animate the walk in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchWalk,
	}
	addInputFlags(watchCmd)
	watchCmd.Flags().DurationVar(&delay, "delay", 80*time.Millisecond, "time between steps")
	watchCmd.Flags().BoolVar(&save, "save", false, "store the finished result")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved art",
		Args:  cobra.NoArgs,
		RunE:  listArt,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "redraw saved art",
		Args:  cobra.ExactArgs(1),
		RunE:  showArt,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [id] [id]",
		Short: "compare two saved fields cell by cell",
		Args:  cobra.ExactArgs(2),
		RunE:  compareArt,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [id]",
		Short: "export saved art to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default <id>.svg)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export saved art to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default <id>.json)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available color themes",
		Args:  cobra.NoArgs,
		RunE:  listThemes,
	}

	rootCmd.AddCommand(drawCmd, statsCmd, watchCmd, listCmd, showCmd, compareCmd, exportSVGCmd, exportJSONCmd, presetsCmd, themesCmd)
	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&fromStdin, "stdin", "s", false, "read input from stdin")
	f.StringVarP(&inputFile, "input", "i", "", "read input from file ('-' for stdin)")
	f.StringVarP(&inputType, "type", "I", config.DefaultInput, "input type for -s / -i: bin, hex or hash")
	f.StringVar(&hashAlg, "hash", config.DefaultHash, "digest for hash input: sha256, sha512 or blake2b")
	f.BoolVarP(&quiet, "quiet", "q", false, "do not echo the fingerprint of hex input")
}

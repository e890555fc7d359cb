package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/export"
	"github.com/san-kum/trajview/internal/traj"
	"github.com/san-kum/trajview/internal/viz"
	"github.com/spf13/cobra"
)

var (
	thinStep   int
	intervalMs int
	repeat     bool
	noOrbits   bool
	pad        float64
	theme      string
	title      string
	configFile string
	preset     string
	// plot dimensions
	plotHeight int
	plotWidth  int
	// export options
	outPath   string
	gifDelay  int
	gifScale  int
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trajview",
		Short: "terminal playback of spacecraft trajectory tables",
	}

	playCmd := &cobra.Command{
		Use:   "play [csv]",
		Short: "animate a trajectory table",
		Args:  cobra.ExactArgs(1),
		RunE:  playTrajectory,
	}
	playCmd.Flags().IntVar(&thinStep, "thin", config.DefaultThinStep, "play every nth sample (1 = no thinning)")
	playCmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "frame period in ms")
	playCmd.Flags().BoolVar(&repeat, "repeat", false, "loop playback after the last frame")
	playCmd.Flags().BoolVar(&noOrbits, "no-orbits", false, "hide reference orbits")
	playCmd.Flags().Float64Var(&pad, "pad", config.DefaultPadFraction, "viewport padding beyond max radius")
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	playCmd.Flags().StringVar(&title, "title", "", "display title (default: file name)")
	playCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	infoCmd := &cobra.Command{
		Use:   "info [csv]",
		Short: "summarize a trajectory table",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}
	infoCmd.Flags().IntVar(&thinStep, "thin", config.DefaultThinStep, "stride used for the frame count")

	plotCmd := &cobra.Command{
		Use:   "plot [csv]",
		Short: "chart radial distance over the mission",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRadius,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "chart height")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render a trajectory without presenting a surface",
	}

	exportGIFCmd := &cobra.Command{
		Use:   "gif [csv]",
		Short: "export playback as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  exportGIF,
	}
	exportGIFCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: csv name with .gif)")
	exportGIFCmd.Flags().IntVar(&thinStep, "thin", config.DefaultThinStep, "render every nth sample")
	exportGIFCmd.Flags().IntVar(&gifDelay, "delay", 2, "delay per frame in 1/100s")
	exportGIFCmd.Flags().IntVar(&gifScale, "scale", 4, "image pixels per canvas sub-pixel")
	exportGIFCmd.Flags().BoolVar(&noOrbits, "no-orbits", false, "hide reference orbits")

	exportSVGCmd := &cobra.Command{
		Use:   "svg [csv]",
		Short: "export the full path as a static SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: csv name with .svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	exportSVGCmd.Flags().BoolVar(&noOrbits, "no-orbits", false, "hide reference orbits")

	exportJSONCmd := &cobra.Command{
		Use:   "json [csv]",
		Short: "export samples and derived telemetry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	exportJSONCmd.Flags().IntVar(&thinStep, "thin", config.DefaultThinStep, "stride recorded in the frame table")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list playback presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	exportCmd.AddCommand(exportGIFCmd, exportSVGCmd, exportJSONCmd)
	rootCmd.AddCommand(playCmd, infoCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags: each later source
// overrides the earlier, and a flag only overrides when explicitly set.
func buildConfig(cmd *cobra.Command, csvPath string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
	}

	if cmd.Flags().Changed("thin") {
		cfg.ThinStep = thinStep
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if cmd.Flags().Changed("repeat") {
		cfg.Repeat = repeat
	}
	if cmd.Flags().Changed("no-orbits") {
		cfg.ShowOrbits = !noOrbits
	}
	if cmd.Flags().Changed("pad") {
		cfg.PadFraction = pad
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = title
	}

	cfg.CSVPath = csvPath
	cfg.Normalize()
	return cfg, nil
}

func playTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	// fail fast: the table is validated before any surface exists
	tr, err := traj.Load(cfg.CSVPath)
	if err != nil {
		return err
	}

	return viz.NewPlayer(tr, cfg).Run()
}

func showInfo(cmd *cobra.Command, args []string) error {
	tr, err := traj.Load(args[0])
	if err != nil {
		return err
	}

	last := tr.Len() - 1
	frames := traj.FrameIndices(tr.Len(), thinStep)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "source\t%s\n", args[0])
	fmt.Fprintf(w, "samples\t%d\n", tr.Len())
	fmt.Fprintf(w, "time span\t%.0f s\t%.1f days\t%.2f years\n", tr.T[last]-tr.T[0], tr.ElapsedDays(last), tr.ElapsedYears(last))
	fmt.Fprintf(w, "max radius\t%.4g km\t%.3f AU\n", tr.MaxRadius(), tr.MaxRadius()/traj.AU)
	fmt.Fprintf(w, "final radius\t%.4g km\t%.3f AU\n", tr.Radius(last), tr.RadiusAU(last))
	fmt.Fprintf(w, "frames (thin %d)\t%d\n", thinStep, len(frames))
	return w.Flush()
}

func plotRadius(cmd *cobra.Command, args []string) error {
	tr, err := traj.Load(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, tr.Len())
	for i := range data {
		data[i] = tr.RadiusAU(i)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("radial distance (AU) vs sample"),
	)
	fmt.Println(graph)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	tr, err := traj.Load(cfg.CSVPath)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = replaceExt(cfg.CSVPath, ".gif")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	p := viz.NewPlayer(tr, cfg)
	if err := export.WriteGIF(f, p, gifDelay, gifScale); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", out, p.FrameCount())
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	tr, err := traj.Load(cfg.CSVPath)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = replaceExt(cfg.CSVPath, ".svg")
	}
	if err := os.WriteFile(out, []byte(export.SceneSVG(tr, cfg, svgWidth, svgHeight)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	tr, err := traj.Load(args[0])
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.WriteJSON(os.Stdout, args[0], tr, thinStep)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteJSON(f, args[0], tr, thinStep)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ext
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ioneq/internal/atomic"
	"github.com/san-kum/ioneq/internal/config"
	"github.com/san-kum/ioneq/internal/ioneq"
	"github.com/san-kum/ioneq/internal/rates"
	"github.com/san-kum/ioneq/internal/report"
	"github.com/san-kum/ioneq/internal/storage"
	"github.com/san-kum/ioneq/internal/tui"
	"github.com/san-kum/ioneq/internal/viz"
)

var (
	dataDir    string
	tmin       float64
	tmax       float64
	points     int
	scale      string
	dataset    string
	abundance  string
	configFile string
	preset     string
	saveRun    bool
	stage      int
	outFile    string
	maxRows    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ioneq",
		Short: "equilibrium ionization balance toolkit",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive browser when no command given
			if err := tui.Run(config.DefaultConfig()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ioneq", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute [element]",
		Short: "compute equilibrium ionization fractions",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompute,
	}
	addGridFlags(computeCmd)
	computeCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	computeCmd.Flags().IntVar(&maxRows, "rows", 20, "max table rows to print")

	plotCmd := &cobra.Command{
		Use:   "plot [element]",
		Short: "terminal chart of one stage's fraction curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	addGridFlags(plotCmd)
	plotCmd.Flags().IntVar(&stage, "stage", 1, "1-based ionization stage")

	chartCmd := &cobra.Command{
		Use:   "chart [element]",
		Short: "render a PNG chart of all stage curves",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	addGridFlags(chartCmd)
	chartCmd.Flags().StringVar(&outFile, "out", "ioneq.png", "output file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	ionsCmd := &cobra.Command{
		Use:   "ions [element]",
		Short: "list the ionization stages of an element",
		Args:  cobra.ExactArgs(1),
		RunE:  runIons,
	}

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list known elements",
		RunE:  runElements,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list temperature-range presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				c := config.Presets[p]
				fmt.Printf("  %-14s %g .. %g K, %d points\n", p, c.TMin, c.TMax, c.Points)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive fraction browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addGridFlags(tuiCmd)

	rootCmd.AddCommand(computeCmd, plotCmd, chartCmd, listCmd, exportCmd, ionsCmd, elementsCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tmin, "tmin", config.DefaultTMin, "lowest temperature (K)")
	cmd.Flags().Float64Var(&tmax, "tmax", config.DefaultTMax, "highest temperature (K)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid samples")
	cmd.Flags().StringVar(&scale, "scale", config.DefaultScale, "grid spacing (log or linear)")
	cmd.Flags().StringVar(&dataset, "dataset", rates.DefaultDataset, "rate dataset")
	cmd.Flags().StringVar(&abundance, "abundance", rates.DefaultAbundance, "abundance set")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "temperature-range preset")
}

// resolveConfig merges preset, config file, and flags; flags win over the
// file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command, element string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(element, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if element != "" {
		cfg.Element = element
	}
	if cmd.Flags().Changed("tmin") {
		cfg.TMin = tmin
	}
	if cmd.Flags().Changed("tmax") {
		cfg.TMax = tmax
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Provider.Dataset = dataset
	}
	if cmd.Flags().Changed("abundance") {
		cfg.Provider.Abundance = abundance
	}

	return cfg, nil
}

func computeFractions(cmd *cobra.Command, element string) (*config.Config, *ioneq.Element, *ioneq.FractionTable, error) {
	cfg, err := resolveConfig(cmd, element)
	if err != nil {
		return nil, nil, nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, nil, nil, err
	}
	el, err := ioneq.New(cfg.Element, grid, cfg.Provider)
	if err != nil {
		return nil, nil, nil, err
	}
	frac, err := el.EquilibriumIonization()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, el, frac, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, el, frac, err := computeFractions(cmd, args[0])
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.Title.Render(fmt.Sprintf("%s (Z=%d), %d stages, %d temperatures",
		el.Symbol(), el.AtomicNumber(), el.Len(), len(frac.Temperature))))
	fmt.Printf("computed in %v\n\n", elapsed)

	printFractionTable(el, frac, maxRows)

	fmt.Println(viz.Subtle.Render("dominant stages:"))
	fmt.Print(viz.DominantStages(el.Symbol(), frac))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(el.Symbol(), el.AtomicNumber(), cfg.Provider.Dataset, frac)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func printFractionTable(el *ioneq.Element, frac *ioneq.FractionTable, limit int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "T (K)")
	for i := 0; i < frac.Stages(); i++ {
		fmt.Fprintf(w, "\t%s %d", el.Symbol(), i+1)
	}
	fmt.Fprintln(w)

	step := 1
	if limit > 0 && len(frac.Fractions) > limit {
		step = (len(frac.Fractions) + limit - 1) / limit
	}
	for t := 0; t < len(frac.Fractions); t += step {
		fmt.Fprintf(w, "%.3e", frac.Temperature[t])
		for _, v := range frac.Fractions[t] {
			fmt.Fprintf(w, "\t%.4f", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, el, frac, err := computeFractions(cmd, args[0])
	if err != nil {
		return err
	}

	ion, err := el.Lookup(fmt.Sprintf("%s %d", el.Symbol(), stage))
	if err != nil {
		return err
	}
	chart, err := viz.StageChart(ion.Name(), frac, stage-1, 80, 15)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	fmt.Println()
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	_, el, frac, err := computeFractions(cmd, args[0])
	if err != nil {
		return err
	}

	png, err := report.FractionPlot(el.Symbol(), frac, report.DefaultOptions())
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, png, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", outFile, len(png))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tELEMENT\tZ\tPOINTS\tRANGE (K)\tDATASET\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1e..%.1e\t%s\t%s\n",
			r.ID, r.Element, r.AtomicNumber, r.Points, r.TMin, r.TMax,
			r.Dataset, r.Timestamp.Format(time.RFC822))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frac, err := st.LoadFractions(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta      *storage.RunMetadata `json:"metadata"`
		Grid      []float64            `json:"temperature_K"`
		Fractions [][]float64          `json:"fractions"`
	}{meta, frac.Temperature, frac.Fractions}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runIons(cmd *cobra.Command, args []string) error {
	z, err := atomic.AtomicNumber(args[0])
	if err != nil {
		return err
	}
	grid := rates.TemperatureGrid{1e6}
	el, err := ioneq.NewZ(z, grid, rates.DefaultProviderConfig())
	if err != nil {
		return err
	}
	fmt.Print(el.String())
	return nil
}

func runElements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tNAME")
	for z := 1; z <= atomic.MaxZ; z++ {
		sym, _ := atomic.Symbol(z)
		name, _ := atomic.Name(z)
		fmt.Fprintf(w, "%d\t%s\t%s\n", z, sym, name)
	}
	return w.Flush()
}

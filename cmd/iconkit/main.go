// Command iconkit generates the SolarVeyo application icon set.
//
// Usage:
//
//	iconkit generate [--config iconkit.yaml] [--design simple] [--out public]
//	iconkit verify [--config iconkit.yaml] [--out public]
//	iconkit designs
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/config"
	"github.com/solarveyo/iconkit/design"
	"github.com/solarveyo/iconkit/generate"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "iconkit: %v\n", err)
		os.Exit(1)
	}
}

// options holds flags shared by generate and verify.
type options struct {
	configPath string
	verbose    bool

	design   string
	out      string
	sizes    []int
	family   string
	font     string
	boldFont string
	fallback string
	mkdir    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "iconkit",
		Short:         "Generate SolarVeyo application icons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			iconkit.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newGenerateCmd(opts),
		newVerifyCmd(opts),
		newDesignsCmd(),
	)
	return root
}

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every icon size and the derived favicon assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			g, err := generate.New(cfg, generate.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer g.Close()

			report, err := g.Run(cmd.Context())
			if err != nil {
				return err
			}
			iconkit.Logger().Debug("generate finished", "report", report.String())
			return nil
		},
	}
	opts.addOutputFlags(cmd)
	f := cmd.Flags()
	f.IntSliceVar(&opts.sizes, "sizes", nil, "icon sizes, e.g. 72,96,512")
	f.StringVar(&opts.family, "family", "", "installed font family for labels")
	f.StringVar(&opts.font, "font", "", "regular font file")
	f.StringVar(&opts.boldFont, "bold-font", "", "bold font file")
	f.StringVar(&opts.fallback, "fallback", "", "font fallback: bitmap or embedded")
	f.BoolVar(&opts.mkdir, "mkdir", false, "create the output directory if missing")
	return cmd
}

func newVerifyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that an output directory holds a complete icon set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			report, err := generate.Verify("", cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s\n", report)
			return nil
		},
	}
	opts.addOutputFlags(cmd)
	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", nil, "icon sizes, e.g. 72,96,512")
	return cmd
}

func newDesignsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "designs",
		Short: "List the available designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range design.Names() {
				d, err := design.Lookup(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == design.DefaultName {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s%s\n", name, d.Description(), marker)
			}
			return nil
		},
	}
}

func (o *options) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.design, "design", "d", "", "design name (see 'iconkit designs')")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output directory")
}

// load reads the configuration file, if any, and applies flags that were
// set explicitly on top of it.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("design") {
		cfg.Design = o.design
	}
	if f.Changed("out") {
		cfg.OutputDir = o.out
	}
	if f.Changed("sizes") {
		cfg.Sizes = o.sizes
	}
	if f.Changed("family") {
		cfg.Fonts.Family = o.family
	}
	if f.Changed("font") {
		cfg.Fonts.Regular = o.font
	}
	if f.Changed("bold-font") {
		cfg.Fonts.Bold = o.boldFont
	}
	if f.Changed("fallback") {
		cfg.Fonts.Fallback = o.fallback
	}
	if f.Changed("mkdir") {
		cfg.CreateDir = o.mkdir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

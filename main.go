package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/echoflaresat/segcross/config"
	"github.com/echoflaresat/segcross/geom"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"seg1":               "seg1",
	"seg2":               "seg2",
	"tolerance":          "tolerance",
	"epsilon":            "epsilon",
	"crossed-parameters": "crossed_parameters",
	"format":             "format",
	"log-level":          "log_level",
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "segcross",
		Short: "Intersect two 3D line segments",
		Long: `segcross reports where two finite 3D line segments meet.

Segments are given as start:end with comma separated coordinates,
e.g. --seg1 0,0,0:2,2,2. Without flags the reference pair
(0,0,0)->(-1,-1,-1) and (-1,0,0)->(0,-1,-1) is used.

Every flag can also be set through a SEGCROSS_<NAME> environment
variable or a YAML file passed with --config.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	d := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.String("seg1", d.Seg1, "First segment as x,y,z:x,y,z")
	flags.String("seg2", d.Seg2, "Second segment as x,y,z:x,y,z")
	flags.Float64("tolerance", d.Tolerance, "Max distance between closest points counted as a hit (0 = exact)")
	flags.Float64("epsilon", d.Epsilon, "Threshold for zero-length and parallel segments")
	flags.Bool("crossed-parameters", d.CrossedParameters, "Apply the solved line parameters to the opposite segments (legacy behavior)")
	flags.String("format", d.Format, "Output format: text or yaml")
	flags.String("log-level", d.LogLevel, "Log level: debug, info, warn or error")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(out, logOut io.Writer, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	seg1, seg2, err := cfg.Segments()
	if err != nil {
		return err
	}

	res := geom.Classify(seg1, seg2, cfg.Options())
	logger.Debug("classified segments",
		"seg1", seg1,
		"seg2", seg2,
		"reason", res.Reason,
		"s", res.S,
		"t", res.T,
		"gap", res.Gap,
	)

	if cfg.Format == config.FormatYAML {
		return writeYAML(out, newReport(seg1, seg2, res))
	}
	return writeText(out, res)
}

func writeText(w io.Writer, res geom.Result) error {
	if res.Hit() {
		_, err := fmt.Fprintf(w, "Intersection: %v\n", res.Point)
		return err
	}
	_, err := fmt.Fprintln(w, "No intersection")
	return err
}

// report is the YAML form of a classification.
type report struct {
	Seg1       string  `yaml:"seg1"`
	Seg2       string  `yaml:"seg2"`
	Intersects bool    `yaml:"intersects"`
	Point      string  `yaml:"point,omitempty"`
	Reason     string  `yaml:"reason"`
	S          float64 `yaml:"s"`
	T          float64 `yaml:"t"`
	Gap        float64 `yaml:"gap"`
}

func newReport(seg1, seg2 geom.Segment, res geom.Result) report {
	r := report{
		Seg1:       seg1.String(),
		Seg2:       seg2.String(),
		Intersects: res.Hit(),
		Reason:     res.Reason.String(),
		S:          res.S,
		T:          res.T,
		Gap:        res.Gap,
	}
	if res.Hit() {
		r.Point = res.Point.String()
	}
	return r
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

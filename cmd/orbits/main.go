package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/lukaszgryglicki/orbits/internal/orbits"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orbits [params-file] [output-image]",
	Short: "Orbit density fractal renderer",
	Long: `Renders escape-time fractals with the orbit density method: every sample
point is iterated and the points its orbit visits are accumulated into a
density grid, which is then tone mapped through a color gradient.
The output format follows the image extension (png, gif, tiff, bmp).`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         render,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the embedded parameter presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range orbits.PresetNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("preset", "", "Render an embedded preset instead of a params file")
	f.Bool("debug", false, "Verbose debug output and orbit stats")
	f.Bool("png", false, "Save animations as a PNG sequence instead of a GIF")
	f.Bool("raw", false, "Also save the raw density grid")
	f.Int("workers", 0, "Render goroutines (0 = all CPUs)")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.Bool("profile", false, "Write a CPU profile to cpu.out")
	for _, name := range []string{"preset", "debug", "png", "raw", "workers", "log-level", "profile"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}

	// DEBUG, PNG, RAW, WORKERS, PROFILE, LOG_LEVEL, PRESET
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(presetsCmd)
}

func render(cmd *cobra.Command, args []string) error {
	orbits.Debug = viper.GetBool("debug")
	orbits.PNG = viper.GetBool("png")
	orbits.RAW = viper.GetBool("raw")
	orbits.Workers = viper.GetInt("workers")
	level := viper.GetString("log-level")
	if orbits.Debug {
		level = "debug"
	}
	orbits.SetLogger(orbits.NewLogger(level))

	if viper.GetBool("profile") {
		f, err := os.Create("cpu.out")
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	out := ""
	if len(args) > 1 {
		out = args[1]
	}
	if name := viper.GetString("preset"); name != "" {
		p, err := orbits.LoadPreset(name)
		if err != nil {
			return err
		}
		return orbits.RunParams(p, out)
	}
	params := "params.yaml"
	if len(args) > 0 {
		params = args[0]
	}
	return orbits.Run(params, out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		orbits.Logger().Errorf("Error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	numKeys    int
	rounds     int
	seed       int64
	structures []string
	verbose    bool
)

var mainCommand = &cobra.Command{
	Use:   "measure",
	Short: "Measure the collections with random workloads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()
		return run(logger, config{numKeys, rounds, seed, structures})
	},
	SilenceUsage: true,
}

func init() {
	mainCommand.Flags().IntVarP(&numKeys, "keys", "n", 100000, "number of random keys per round")
	mainCommand.Flags().IntVarP(&rounds, "rounds", "r", 10, "rounds per structure")
	mainCommand.Flags().Int64Var(&seed, "seed", 0, "seed of the random keys")
	mainCommand.Flags().StringSliceVarP(&structures, "structures", "s", allStructures(), "structures to measure")
	mainCommand.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every round")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command road-bundlerctl drives a deterministic fixture scenario
// through the session's batch fixers and prints the simplified graph
// as GeoJSON. It exists to exercise the engine end to end from a
// single binary; it is not the ingestion/rendering pipeline spec.md §1
// treats as an external collaborator — it loads an already-built
// fixture graph, matching the "input contract" of §6, not raw
// geotagged data.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dabreegster/road-bundler/commands"
	"github.com/dabreegster/road-bundler/config"
	"github.com/dabreegster/road-bundler/fixtures"
	"github.com/dabreegster/road-bundler/geometry"
	"github.com/dabreegster/road-bundler/readout"
	"github.com/dabreegster/road-bundler/session"
)

var (
	scenarioName string
	configPath   string
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "road-bundlerctl: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "road-bundlerctl",
	Short: "Simplify a digitised street network into a centerline graph",
	Long: `road-bundlerctl builds one of the built-in fixture scenarios, runs every
batch fixer (dual carriageways, dog-legs, degenerate intersections,
sidepaths, service roads) to a fixed point, and prints the resulting
edges as a GeoJSON FeatureCollection.

Each scenario is self-contained; they are not composed together since
their fixture coordinates overlap by design (every scenario reuses the
same small coordinate neighborhood around the origin).

Scenarios: dog-leg, dual-carriageway, degenerate, sidepath`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "dog-leg",
		"fixture scenario to run (dog-leg, dual-carriageway, degenerate, sidepath)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"optional YAML tolerances file (see config.Load)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every applied command at Info level")
}

func run(cmd *cobra.Command, args []string) error {
	tolerances, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// Overwrite every package's tolerance variables so the loaded
	// overrides actually reach the engine, not just this log field.
	commands.ApplyTolerances(tolerances)
	geometry.ApplyTolerances(tolerances)
	readout.ApplyTolerances(tolerances)

	logger := logrus.New()
	if !verbose {
		logger.SetLevel(logrus.WarnLevel)
	}
	entry := logrus.NewEntry(logger).WithField("tolerances.dogleg_max_m", tolerances.DogLegMaxLengthMeters)

	cons, err := constructorsFor(scenarioName)
	if err != nil {
		return err
	}

	g, err := fixtures.BuildGraph(fixtures.DefaultBoundary(), cons...)
	if err != nil {
		return fmt.Errorf("building scenario %q: %w", scenarioName, err)
	}

	s := session.NewFromGraph(g, nil, entry)

	dc := s.FixAllDualCarriageways()
	dogLegs := s.FixAllDogLegs()
	degenerate := s.CollapseAllDegenerateIntersections()
	sidepaths := s.RemoveAllSidepaths()
	serviceRoads := s.RemoveAllServiceRoads()

	fmt.Fprintf(os.Stderr,
		"road-bundlerctl: scenario=%s dual_carriageways=%d dog_legs=%d degenerate=%d sidepaths=%d service_roads=%d edges=%d\n",
		scenarioName, dc, dogLegs, degenerate, sidepaths, serviceRoads, len(s.Graph().Edges))

	fc := readout.EdgeFeatures(s.Graph())
	out, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func constructorsFor(name string) ([]fixtures.Constructor, error) {
	switch name {
	case "dog-leg":
		return []fixtures.Constructor{(&fixtures.DogLeg{}).Constructor()}, nil
	case "dual-carriageway":
		return []fixtures.Constructor{(&fixtures.DualCarriageway{}).Constructor()}, nil
	case "degenerate":
		return []fixtures.Constructor{(&fixtures.Degenerate{}).Constructor()}, nil
	case "sidepath":
		return []fixtures.Constructor{(&fixtures.Sidepath{}).Constructor()}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q (want dog-leg, dual-carriageway, degenerate, sidepath)", name)
	}
}

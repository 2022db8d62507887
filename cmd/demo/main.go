// Demo runs the reference scenario and a couple of contrasting what-ifs,
// printing their KPI blocks side by side.
package main

import (
	"fmt"
	"os"

	"gridsim/internal/engine"
	"gridsim/internal/results"
	"gridsim/internal/scenario"
)

func main() {
	cases := []struct {
		name  string
		setup func(scenario.Parameters) scenario.Parameters
	}{
		{"reference", func(p scenario.Parameters) scenario.Parameters { return p }},
		{"solar-heavy", func(p scenario.Parameters) scenario.Parameters {
			p.SolarGW = 80
			return p
		}},
		{"nuclear-phaseout", func(p scenario.Parameters) scenario.Parameters {
			p.NuclearDecommission = true
			p.TargetYear = 2033
			return p
		}},
	}

	eng := engine.New()
	for _, tc := range cases {
		params := tc.setup(scenario.Defaults())
		run, err := eng.Run(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", tc.name, err)
			os.Exit(1)
		}
		k := results.Aggregate(run)
		fmt.Printf("=== %s ===\n", tc.name)
		fmt.Printf("  weighted price  %7.2f €/MWh\n", k.WeightedAvgPriceEURMWh)
		fmt.Printf("  renewable share %7.1f %%\n", k.RenewableSharePct)
		fmt.Printf("  gas energy      %7.1f TWh\n", k.GasEnergyTWh)
		fmt.Printf("  emissions       %7.1f MtCO2\n", k.EmissionsMtCO2)
		fmt.Printf("  curtailment     %7.2f %%\n", k.CurtailmentPct)
		fmt.Printf("  deficit hours   %7d\n", k.DeficitHours)
		fmt.Println()
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gridsim/internal/engine"
	"gridsim/internal/results"
	"gridsim/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/scenario.yaml --out results/hourly.csv")
	fmt.Println("  cli sweep --param solar_gw --from 10 --to 60 --steps 6")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run simulates one scenario and prints its KPI block")
	fmt.Println("  - sweep varies one capacity across a range to show price/coverage sensitivity")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario (defaults used when empty)")
	outPath := fs.String("out", "", "Optional output CSV path for the hourly ledger")
	_ = fs.Parse(args)

	params := scenario.Defaults()
	if *cfgPath != "" {
		var err error
		params, err = scenario.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load scenario: %v\n", err)
			os.Exit(1)
		}
	}

	run, err := engine.New().Run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	kpis := results.Aggregate(run)
	printKPIs(kpis)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
			os.Exit(1)
		}
		if err := results.WriteHourlyCSV(*outPath, run); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(run.Hours), *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario used as the base")
	param := fs.String("param", "solar_gw", "Capacity parameter to vary")
	from := fs.Float64("from", 0, "Range start")
	to := fs.Float64("to", 100, "Range end")
	steps := fs.Int("steps", 5, "Number of points")
	_ = fs.Parse(args)

	base := scenario.Defaults()
	if *cfgPath != "" {
		var err error
		base, err = scenario.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load scenario: %v\n", err)
			os.Exit(1)
		}
	}
	if *steps < 2 {
		fmt.Fprintln(os.Stderr, "--steps must be >= 2")
		os.Exit(2)
	}

	fmt.Printf("%-12s %-12s %-14s %-12s %-12s\n",
		*param, "avg €/MWh", "wavg €/MWh", "renew %", "gas TWh")
	for i := 0; i < *steps; i++ {
		value := *from + (*to-*from)*float64(i)/float64(*steps-1)
		params, err := setParam(base, *param, value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		run, err := engine.New().Run(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulate %s=%g: %v\n", *param, value, err)
			os.Exit(1)
		}
		kpis := results.Aggregate(run)
		fmt.Printf("%-12.1f %-12.2f %-14.2f %-12.1f %-12.1f\n",
			value, kpis.AvgPriceEURMWh, kpis.WeightedAvgPriceEURMWh,
			kpis.RenewableSharePct, kpis.GasEnergyTWh)
	}
}

func setParam(base scenario.Parameters, name string, value float64) (scenario.Parameters, error) {
	o := scenario.Overrides{}
	switch name {
	case "nuclear_gw":
		o.NuclearGW = &value
	case "solar_gw":
		o.SolarGW = &value
	case "wind_gw":
		o.WindGW = &value
	case "hydro_gw":
		o.HydroGW = &value
	case "gas_gw":
		o.GasGW = &value
	case "battery_power_gw":
		o.BatteryPowerGW = &value
	case "battery_energy_gwh":
		o.BatteryEnergyGWh = &value
	case "interconnect_gw":
		o.InterconnectGW = &value
	case "base_demand_twh":
		o.BaseDemandTWh = &value
	default:
		return base, fmt.Errorf("unsupported sweep parameter: %s", name)
	}
	return scenario.Apply(base, o), nil
}

func printKPIs(k results.Results) {
	fmt.Printf("Average price          %8.2f €/MWh (weighted %.2f)\n",
		k.AvgPriceEURMWh, k.WeightedAvgPriceEURMWh)
	fmt.Printf("Price P10/P50/P90      %8.2f / %.2f / %.2f\n",
		k.PriceP10, k.PriceP50, k.PriceP90)
	fmt.Printf("Price min/max          %8.2f / %.2f\n", k.PriceMin, k.PriceMax)
	fmt.Printf("Demand                 %8.1f TWh\n", k.DemandTWh)
	fmt.Printf("Renewable share        %8.1f %%\n", k.RenewableSharePct)
	fmt.Printf("Gas share              %8.1f %% (%.1f TWh)\n", k.GasSharePct, k.GasEnergyTWh)
	fmt.Printf("Emissions              %8.1f MtCO2\n", k.EmissionsMtCO2)
	fmt.Printf("Curtailment            %8.2f %% (%.2f TWh)\n", k.CurtailmentPct, k.CurtailedTWh)
	fmt.Printf("Deficit hours          %8d (max %.2f GW)\n", k.DeficitHours, k.MaxDeficitGW)
}

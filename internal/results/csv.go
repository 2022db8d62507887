package results

import (
	"encoding/csv"
	"os"
	"strconv"

	"gridsim/internal/engine"
)

// WriteHourlyCSV writes the per-hour dispatch ledger alongside prices. This
// is the primary artifact for inspecting "what happened" in a run.
func WriteHourlyCSV(path string, run *engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"demand_gw",
		"nuclear_gw",
		"solar_gw",
		"wind_gw",
		"hydro_gw",
		"gas_gw",
		"battery_charge_gw",
		"battery_discharge_gw",
		"pumped_charge_gw",
		"pumped_discharge_gw",
		"flex_up_gw",
		"flex_down_gw",
		"import_gw",
		"export_gw",
		"curtailment_gw",
		"unserved_gw",
		"battery_level_gwh",
		"pumped_level_gwh",
		"price_eur_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range run.Hours {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.DemandGW),
			fmtFloat(r.NuclearGW),
			fmtFloat(r.SolarGW),
			fmtFloat(r.WindGW),
			fmtFloat(r.HydroGW),
			fmtFloat(r.GasGW),
			fmtFloat(r.BatteryChargeGW),
			fmtFloat(r.BatteryDischargeGW),
			fmtFloat(r.PumpedChargeGW),
			fmtFloat(r.PumpedDischargeGW),
			fmtFloat(r.FlexUpGW),
			fmtFloat(r.FlexDownGW),
			fmtFloat(r.ImportGW),
			fmtFloat(r.ExportGW),
			fmtFloat(r.CurtailmentGW),
			fmtFloat(r.UnservedGW),
			fmtFloat(r.BatteryLevelGWh),
			fmtFloat(r.PumpedLevelGWh),
			fmtFloat(run.Prices[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

package engine

// Reservoir is one storage unit (battery or pumped hydro): an energy store
// with a symmetric power limit and a charge efficiency. Levels stay within
// [0, capacity] by construction.
type Reservoir struct {
	CapacityGWh      float64
	LevelGWh         float64
	PowerGW          float64
	ChargeEfficiency float64
}

// ChargeLimitGW is the grid-side power the reservoir can absorb this hour:
// bounded by the power limit and by the remaining headroom divided by the
// charge efficiency (energy stored per unit absorbed).
func (r *Reservoir) ChargeLimitGW() float64 {
	if r.CapacityGWh <= 0 || r.PowerGW <= 0 {
		return 0
	}
	headroom := r.CapacityGWh - r.LevelGWh
	if headroom <= 0 {
		return 0
	}
	eff := r.ChargeEfficiency
	if eff < 0.1 {
		eff = 0.1
	}
	limit := headroom / eff
	if limit > r.PowerGW {
		limit = r.PowerGW
	}
	return limit
}

// Charge absorbs gw of grid power for one hour, storing gw*efficiency.
func (r *Reservoir) Charge(gw float64) {
	if gw <= 0 {
		return
	}
	r.LevelGWh += gw * r.ChargeEfficiency
	if r.LevelGWh > r.CapacityGWh {
		r.LevelGWh = r.CapacityGWh
	}
}

// DischargeLimitGW is the power the reservoir can deliver this hour: bounded
// by the power limit and the stored level.
func (r *Reservoir) DischargeLimitGW() float64 {
	if r.PowerGW <= 0 || r.LevelGWh <= 0 {
		return 0
	}
	limit := r.LevelGWh
	if limit > r.PowerGW {
		limit = r.PowerGW
	}
	return limit
}

// Discharge delivers gw of power for one hour.
func (r *Reservoir) Discharge(gw float64) {
	if gw <= 0 {
		return
	}
	r.LevelGWh -= gw
	if r.LevelGWh < 0 {
		r.LevelGWh = 0
	}
}

// Decay applies a per-hour self-discharge rate.
func (r *Reservoir) Decay(rate float64) {
	r.LevelGWh *= 1 - rate
	if r.LevelGWh < 0 {
		r.LevelGWh = 0
	}
}

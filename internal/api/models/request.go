package models

import "gridsim/internal/scenario"

// SimulateRequest is the request body for running one scenario. Every field
// is an override on the engine defaults.
type SimulateRequest struct {
	Scenario scenario.Overrides `json:"scenario"`
	Options  SimulateOptions    `json:"options,omitempty"`
}

// SimulateOptions contains optional run parameters.
type SimulateOptions struct {
	IncludeHourly bool `json:"include_hourly,omitempty"` // default: false
}

// CompareRequest runs several named what-if variations against a common base
// scenario.
type CompareRequest struct {
	Base       scenario.Overrides `json:"base"`
	Variations []Variation        `json:"variations" binding:"required"`
}

// Variation is one named override set layered on top of the base.
type Variation struct {
	Name     string             `json:"name" binding:"required"`
	Scenario scenario.Overrides `json:"scenario"`
}

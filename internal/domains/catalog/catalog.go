// Package catalog holds the static issue-category reference data used when a
// work order is opened. The data never changes at runtime, so there is no
// repository behind it.
package catalog

type Requirements struct {
	RequiredParts   []string `json:"required_parts"`
	RequiredTools   []string `json:"required_tools"`
	TypicalDuration int      `json:"typical_duration_minutes"`
}

var requirements = map[string]Requirements{
	"electrical": {
		RequiredParts:   []string{"fuse", "wiring", "socket", "switch"},
		RequiredTools:   []string{"multimeter", "screwdriver_set", "wire_stripper"},
		TypicalDuration: 90,
	},
	"plumbing": {
		RequiredParts:   []string{"pipe_seal", "washer", "valve"},
		RequiredTools:   []string{"pipe_wrench", "plunger", "sealant_gun"},
		TypicalDuration: 120,
	},
	"hvac": {
		RequiredParts:   []string{"air_filter", "refrigerant", "thermostat"},
		RequiredTools:   []string{"gauge_manifold", "vacuum_pump", "screwdriver_set"},
		TypicalDuration: 180,
	},
	"furniture": {
		RequiredParts:   []string{"screws", "wood_glue", "hinge"},
		RequiredTools:   []string{"drill", "screwdriver_set", "clamp"},
		TypicalDuration: 60,
	},
	"appliances": {
		RequiredParts:   []string{"power_cord", "heating_element", "fuse"},
		RequiredTools:   []string{"multimeter", "screwdriver_set"},
		TypicalDuration: 90,
	},
	"other": {
		RequiredParts:   []string{},
		RequiredTools:   []string{"toolbox"},
		TypicalDuration: 60,
	},
}

// Lookup returns the requirement bundle for an issue category. Unknown
// categories get the zero value so callers never fail on catalog misses.
func Lookup(category string) Requirements {
	return requirements[category]
}

// Categories lists the known issue categories. Order is not significant.
func Categories() []string {
	out := make([]string, 0, len(requirements))
	for cat := range requirements {
		out = append(out, cat)
	}

	return out
}

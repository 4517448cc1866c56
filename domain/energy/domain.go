// Package energy defines the technology domains the validation engine
// understands. A domain selects which benchmark rows and physical ceilings
// apply to a given metric.
package energy

import "strings"

// Domain identifies a clean-energy technology family
type Domain string

const (
	DomainSolar        Domain = "solar"
	DomainWind         Domain = "wind"
	DomainWindOffshore Domain = "wind_offshore"
	DomainBattery      Domain = "battery"
	DomainHydrogen     Domain = "hydrogen"
	DomainNuclear      Domain = "nuclear"
	DomainGeothermal   Domain = "geothermal"

	// DomainGeneric keys benchmark rows that apply across technologies
	// (e.g. discount rates). Callers never pass it directly; lookups fall
	// back to it when no technology-specific row exists.
	DomainGeneric Domain = ""
)

// knownDomains maps freeform producer labels onto canonical domains.
// Upstream engines disagree on spelling ("solar_pv", "Solar PV", "pv"),
// so parsing is tolerant by intent.
var knownDomains = map[string]Domain{
	"solar":           DomainSolar,
	"solar_pv":        DomainSolar,
	"pv":              DomainSolar,
	"photovoltaic":    DomainSolar,
	"wind":            DomainWind,
	"wind_onshore":    DomainWind,
	"onshore_wind":    DomainWind,
	"wind_offshore":   DomainWindOffshore,
	"offshore_wind":   DomainWindOffshore,
	"battery":         DomainBattery,
	"battery_storage": DomainBattery,
	"storage":         DomainBattery,
	"hydrogen":        DomainHydrogen,
	"green_hydrogen":  DomainHydrogen,
	"electrolyzer":    DomainHydrogen,
	"nuclear":         DomainNuclear,
	"geothermal":      DomainGeothermal,
}

// Parse normalizes a freeform domain label. Unrecognized labels are
// returned lowercased and trimmed rather than rejected: validators simply
// find no benchmarks for them and record nothing.
func Parse(s string) Domain {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if d, ok := knownDomains[key]; ok {
		return d
	}
	return Domain(key)
}

// Known reports whether the domain maps to a canonical technology family
func (d Domain) Known() bool {
	for _, canonical := range knownDomains {
		if d == canonical {
			return true
		}
	}
	return false
}

// String returns the string representation
func (d Domain) String() string {
	if d == DomainGeneric {
		return "generic"
	}
	return string(d)
}

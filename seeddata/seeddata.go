// Package seeddata embeds the reference catalog loaded by database.SeedData.
package seeddata

import _ "embed"

//go:embed financing_profiles.json
var FinancingProfilesJSON []byte

//go:embed vehicles.json
var VehiclesJSON []byte

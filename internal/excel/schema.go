package excel

import "strings"

// Column names shared by the import template and the parts export. Import
// only reads the columns below; the export adds the derived columns so a
// re-import of an export round-trips cleanly (derived columns are ignored
// on the way back in).
const (
	ColParentSKU           = "parent_sku"
	ColParentName          = "parent_name"
	ColParentDescription   = "parent_description"
	ColParentCountry       = "parent_country_of_origin"
	ColParentTotalWeightKg = "parent_total_weight_kg"
	ColParentTotalValueUSD = "parent_total_value_usd"
	ColParentStatus        = "parent_status"

	ColChildIdentifier  = "child_identifier"
	ColChildName        = "child_name"
	ColChildDescription = "child_description"
	ColChildCountry     = "child_country_of_origin"
	ColChildWeightKg    = "child_weight_kg"
	ColChildWeightLbs   = "child_weight_lbs"
	ColChildValueUSD    = "child_value_usd"
	ColChildAluminumPct = "child_aluminum_percent"
	ColChildSteelPct    = "child_steel_percent"
	ColChildHasRussian  = "child_has_russian_content"
	ColChildRussianPct  = "child_russian_percent"
	ColChildRussianDesc = "child_russian_description"
	ColChildManufMethod = "child_manufacturing_method"
	ColChildIsComplete  = "child_is_complete"
)

// TemplateColumns is the column order of the import template.
var TemplateColumns = []string{
	ColParentSKU, ColParentName, ColParentDescription, ColParentCountry,
	ColParentTotalWeightKg, ColParentTotalValueUSD,
	ColChildIdentifier, ColChildName, ColChildDescription, ColChildCountry,
	ColChildWeightKg, ColChildValueUSD, ColChildAluminumPct, ColChildSteelPct,
	ColChildHasRussian, ColChildRussianPct, ColChildRussianDesc,
	ColChildManufMethod,
}

// ExportColumns is the column order of the parts export: the template
// columns plus derived fields.
var ExportColumns = []string{
	ColParentSKU, ColParentName, ColParentDescription, ColParentCountry,
	ColParentTotalWeightKg, ColParentTotalValueUSD, ColParentStatus,
	ColChildIdentifier, ColChildName, ColChildDescription, ColChildCountry,
	ColChildWeightKg, ColChildWeightLbs, ColChildValueUSD,
	ColChildAluminumPct, ColChildSteelPct,
	ColChildHasRussian, ColChildRussianPct, ColChildRussianDesc,
	ColChildManufMethod, ColChildIsComplete,
}

// recognizedCountries holds the country-of-origin vocabulary, keyed by
// upper-cased name. Both common names and ISO alpha-2 codes are accepted.
var recognizedCountries = map[string]struct{}{}

// recognizedMethods holds the manufacturing method vocabulary, keyed by
// upper-cased name.
var recognizedMethods = map[string]struct{}{}

func init() {
	countries := []string{
		"USA", "US", "United States",
		"Canada", "CA",
		"Mexico", "MX",
		"Japan", "JP",
		"Germany", "DE",
		"China", "CN",
		"Thailand", "TH",
		"Taiwan", "TW",
		"South Korea", "KR",
		"India", "IN",
		"Vietnam", "VN",
		"Brazil", "BR",
		"United Kingdom", "UK", "GB",
		"France", "FR",
		"Italy", "IT",
		"Spain", "ES",
		"Poland", "PL",
		"Czech Republic", "CZ",
		"Turkey", "TR",
		"Malaysia", "MY",
		"Indonesia", "ID",
		"Philippines", "PH",
		"Australia", "AU",
		"Russia", "RU",
	}
	for _, c := range countries {
		recognizedCountries[strings.ToUpper(c)] = struct{}{}
	}

	methods := []string{
		"Welded", "CNC Machined", "Machined", "Stamped", "Forged", "Cast",
		"Molded", "Injection Molded", "Extruded", "Assembled", "3D Printed",
	}
	for _, m := range methods {
		recognizedMethods[strings.ToUpper(m)] = struct{}{}
	}
}

// IsRecognizedCountry reports whether the value is in the country-of-origin
// vocabulary. Matching is case-insensitive.
func IsRecognizedCountry(value string) bool {
	_, ok := recognizedCountries[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// IsRecognizedManufacturingMethod reports whether the value is in the
// manufacturing method vocabulary. Matching is case-insensitive.
func IsRecognizedManufacturingMethod(value string) bool {
	_, ok := recognizedMethods[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

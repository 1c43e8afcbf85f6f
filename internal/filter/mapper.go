package filter

// attributeMapping translates request-facing camelCase attribute names to
// the column names used by the accounts table.
var attributeMapping = map[string]string{
	"timeHorizon":          "Time_Horizon",
	"riskTolerance":        "Risk_Tolerance",
	"state":                "State",
	"age":                  "Age",
	"maritalStatus":        "Marital_Status",
	"dependents":           "Dependents",
	"clientIndustry":       "Client_Industry",
	"residencyZip":         "Residency_Zip",
	"accountStatus":        "Account_Status",
	"annualIncome":         "Annual_Income",
	"liquidityNeeds":       "Liquidity_Needs",
	"investmentExperience": "Investment_Experience",
	"investmentGoals":      "Investment_Goals",
	"exclusions":           "Exclusions",
	"sriPreferences":       "SRI_Preferences",
	"taxStatus":            "Tax_Status",
	"accountId":            "Account_ID",
}

// MapAttribute translates a request attribute name to its internal column
// name. Unknown attributes are returned unchanged.
func MapAttribute(attribute string) string {
	if column, ok := attributeMapping[attribute]; ok {
		return column
	}
	return attribute
}

// LookupAttribute translates a request attribute name to its internal
// column name, reporting whether a mapping exists.
func LookupAttribute(attribute string) (string, bool) {
	column, ok := attributeMapping[attribute]
	if !ok {
		return attribute, false
	}
	return column, true
}

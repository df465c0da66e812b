package models

// billCatalog maps each supported bill type to its mandatory amount in NGN.
// The amount for a bill payment always comes from here; whatever amount the
// caller supplies is ignored.
var billCatalog = map[string]int64{
	"Electricity": 5000,
	"Insurance":   3000,
	"Cable TV":    2500,
	"Taxes":       10000,
	"Utility":     1500,
	"Rent":        20000,
}

// BillAmount returns the fixed amount for a bill type, or false if the bill
// type is not in the catalog.
func BillAmount(billType string) (int64, bool) {
	amount, ok := billCatalog[billType]
	return amount, ok
}

// BillTypes returns the names of all supported bill types.
func BillTypes() []string {
	names := make([]string, 0, len(billCatalog))
	for name := range billCatalog {
		names = append(names, name)
	}
	return names
}

package kitchen

// conversionRates holds the fixed unit conversion table. Reading
// conversionRates[from][to] gives the factor that turns a quantity in
// "from" into "to". Only the pairs below are supported; anything else
// falls back to comparing the raw numbers (see ConvertQuantity).
var conversionRates = map[string]map[string]float64{
	"kg":   {"g": 1000, "kg": 1},
	"g":    {"g": 1, "kg": 0.001},
	"l":    {"ml": 1000, "l": 1},
	"ml":   {"ml": 1, "l": 0.001},
	"tbsp": {"tsp": 3, "tbsp": 1},
	"tsp":  {"tsp": 1, "tbsp": 0.333},
	"cup":  {"ml": 240, "cup": 1}, // approximate
}

// ConvertQuantity converts quantity from one unit into another using the
// fixed table. When no entry exists for the pair the quantity is
// returned unchanged and ok is false, so callers can surface the
// mismatch instead of silently trusting the number.
func ConvertQuantity(quantity float64, from, to string) (converted float64, ok bool) {
	if from == to {
		return quantity, true
	}
	if factors, found := conversionRates[from]; found {
		if factor, found := factors[to]; found {
			return quantity * factor, true
		}
	}
	return quantity, false
}

//go:build nocalc

package buildtags

// CalculationEnabled indicates whether the calculation step runs by default.
// In nocalc builds only the descriptive banner is printed.
const CalculationEnabled = false

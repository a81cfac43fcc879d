//go:build !nocalc

package buildtags

// CalculationEnabled indicates whether the calculation step runs by default
const CalculationEnabled = true

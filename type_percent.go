package finreport

import "fmt"

// Percent is a value expressed in percent (25 means 25%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// SignedString always prints the sign, a change of 25% is "+25.0%".
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.1f%%", float64(p))
}

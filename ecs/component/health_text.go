package component

import "fmt"

// HealthText is the on-screen health readout. Shown is the value Text was
// last rendered for; -1 forces a refresh.
type HealthText struct {
	Text     string
	Shown    int
	FontSize float64
}

// FormatHealth renders the health readout.
func FormatHealth(n int) string {
	return fmt.Sprintf("Health: %d ❤️", n)
}

var HealthTextComponent = NewComponent[HealthText]()

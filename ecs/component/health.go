package component

// Health tracks hit points. Current stays within [0, Initial].
type Health struct {
	Initial int
	Current int
}

// Damage subtracts amount, clamping at zero, and returns the new value.
func (h *Health) Damage(amount int) int {
	if h == nil {
		return 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

func (h *Health) Dead() bool {
	return h != nil && h.Current <= 0
}

var HealthComponent = NewComponent[Health]()

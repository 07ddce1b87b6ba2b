package oledterm

// NumIndicators is the number of indicators addressable by the led command.
const NumIndicators = 3

// Indicators controls the indicator LEDs of a board. Index is 1-based. The
// implementation owns the pin mapping and the polarity of each LED.
type Indicators interface {
	SetIndicator(index int, active bool)
}

// IndicatorFunc adapts a function to the Indicators interface.
type IndicatorFunc func(index int, active bool)

// SetIndicator calls f(index, active).
func (f IndicatorFunc) SetIndicator(index int, active bool) {
	f(index, active)
}

type noIndicators struct{}

func (noIndicators) SetIndicator(int, bool) {}

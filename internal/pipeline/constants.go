package pipeline

// Pipeline construction constants
const (
	// defaultStageCapacity is the initial capacity for the stages slice.
	defaultStageCapacity = 2

	// latencyDivisor halves a symmetric FIR length to get its group delay.
	latencyDivisor = 2
)

package random

import "fmt"

// MockRandom - returns queued values from Intn, then 0 once the queue runs out.
type MockRandom struct {
	IntnResults []int
	index       int
}

var _ Random = (*MockRandom)(nil)

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

// Intn - panics when the queued value is outside [0, n).
func (that *MockRandom) Intn(n int) int {
	if that.index >= len(that.IntnResults) {
		return 0
	}

	result := that.IntnResults[that.index]
	that.index++

	if result < 0 || result >= n {
		panic(fmt.Sprintf("MockRandom: queued value %d is out of range [0, %d)", result, n))
	}

	return result
}

func (that *MockRandom) QueueIntn(values ...int) {
	that.IntnResults = append(that.IntnResults, values...)
}

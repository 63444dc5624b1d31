package ledger

import "github.com/saldodev/finza/internal/model"

// OtherBucket is the synthetic category that TopN folds the tail into.
const OtherBucket = "Other"

// MovingAverage computes a trailing moving average over values. The
// window is clamped to at least 1. Early positions average only the
// history available so far, so the output always has the same length
// as the input and starts at the first value itself.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Cumulative computes the running sum of values.
func Cumulative(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		out[i] = sum
	}
	return out
}

// TopN keeps the first n entries in the caller's order and folds the
// rest into a single "Other" bucket holding their sum. A breakdown
// with n or fewer entries is returned unchanged.
func TopN(entries []model.CategoryExpense, n int) []model.CategoryExpense {
	if n < 0 {
		n = 0
	}
	if len(entries) <= n {
		return entries
	}

	out := make([]model.CategoryExpense, 0, n+1)
	out = append(out, entries[:n]...)

	var rest float64
	for _, e := range entries[n:] {
		rest += e.Amount
	}
	out = append(out, model.CategoryExpense{Category: OtherBucket, Amount: rest})
	return out
}

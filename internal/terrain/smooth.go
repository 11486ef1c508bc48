package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Smoothing defaults used to place launchers on traced heightmaps.
const (
	DefaultSmoothWindow = 51
	DefaultSmoothOrder  = 3
)

var errSingular = errors.New("terrain: singular smoothing system")

// SavitzkyGolay smooths ys with a least-squares polynomial of the given order
// fitted over an odd window. The signal is padded at both ends by reflecting
// the first and last half-window about the end values, so the output has the
// same length as the input.
func SavitzkyGolay(ys []float64, window, order int) ([]float64, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("terrain: smoothing window must be a positive odd number, got %d", window)
	}
	if window < order+2 {
		return nil, fmt.Errorf("terrain: smoothing window %d too small for order %d", window, order)
	}
	half := window / 2
	n := len(ys)
	if n <= half {
		return nil, fmt.Errorf("terrain: %d samples cannot fill a half window of %d", n, half)
	}
	coeffs, err := savgolCoefficients(half, order)
	if err != nil {
		return nil, err
	}

	padded := make([]float64, 0, n+2*half)
	first, last := ys[0], ys[n-1]
	for i := half; i >= 1; i-- {
		padded = append(padded, first-math.Abs(ys[i]-first))
	}
	padded = append(padded, ys...)
	for i := n - 2; i >= n-1-half; i-- {
		padded = append(padded, last+math.Abs(ys[i]-last))
	}

	out := make([]float64, n)
	for i := range out {
		var acc float64
		for j, c := range coeffs {
			acc += c * padded[i+j]
		}
		out[i] = acc
	}
	return out, nil
}

// savgolCoefficients returns the zeroth-derivative convolution weights for a
// window of 2*half+1 samples.
func savgolCoefficients(half, order int) ([]float64, error) {
	size := order + 1
	// Normal matrix of the Vandermonde design, augmented with e0.
	m := make([][]float64, size)
	for r := range m {
		m[r] = make([]float64, size+1)
		for c := 0; c < size; c++ {
			var sum float64
			for k := -half; k <= half; k++ {
				sum += math.Pow(float64(k), float64(r+c))
			}
			m[r][c] = sum
		}
	}
	m[0][size] = 1

	for col := 0; col < size; col++ {
		pivot := col
		for r := col + 1; r < size; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, errSingular
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := 0; r < size; r++ {
			if r == col {
				continue
			}
			f := m[r][col] / m[col][col]
			for c := col; c <= size; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}
	x := make([]float64, size)
	for i := range x {
		x[i] = m[i][size] / m[i][i]
	}

	coeffs := make([]float64, 2*half+1)
	for k := -half; k <= half; k++ {
		var c float64
		for j, xj := range x {
			c += xj * math.Pow(float64(k), float64(j))
		}
		coeffs[k+half] = c
	}
	return coeffs, nil
}

// LocalMaxima returns the indices strictly greater than both neighbours.
// Endpoints and plateaus never qualify.
func LocalMaxima(ys []float64) []int {
	var out []int
	for i := 1; i < len(ys)-1; i++ {
		if ys[i] > ys[i-1] && ys[i] > ys[i+1] {
			out = append(out, i)
		}
	}
	return out
}

// LocalMinima returns the indices strictly smaller than both neighbours.
func LocalMinima(ys []float64) []int {
	var out []int
	for i := 1; i < len(ys)-1; i++ {
		if ys[i] < ys[i-1] && ys[i] < ys[i+1] {
			out = append(out, i)
		}
	}
	return out
}

// FindExtrema smooths the path heights and returns valley and peak indices.
// The window shrinks to the largest odd size the path can fill; paths too
// short for any window of the requested order have no extrema.
func FindExtrema(p *Path, window, order int) (valleys, peaks []int, err error) {
	heights := p.Heights()
	maxWindow := 2*(len(heights)-1) + 1
	if window > maxWindow {
		window = maxWindow
	}
	if window%2 == 0 {
		window--
	}
	if window < order+2 {
		return nil, nil, nil
	}
	smoothed, err := SavitzkyGolay(heights, window, order)
	if err != nil {
		return nil, nil, err
	}
	return LocalMinima(smoothed), LocalMaxima(smoothed), nil
}

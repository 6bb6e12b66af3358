// Package extrema locates strict local maxima, strict local minima, and
// zero-crossings in a sampled sequence, and extends both extrema sets with
// mirrored virtual endpoints so that an envelope built from them can be
// evaluated across the full sample range without extrapolation.
package extrema

// Set holds the detected extrema, ordered by x strictly increasing, plus
// the zero-crossing count. MaxX/MaxY and MinX/MinY already include the two
// virtual endpoints appended by Find.
type Set struct {
	MaxX, MaxY []float64
	MinX, MinY []float64
	NumZC      int
}

// NumMax returns the number of detected maxima, including virtual endpoints.
func (s Set) NumMax() int { return len(s.MaxX) }

// NumMin returns the number of detected minima, including virtual endpoints.
func (s Set) NumMin() int { return len(s.MinX) }

// Find scans x for interior strict extrema (with plateau midpoint
// resolution), mirrors a virtual extremum across each boundary for both
// envelopes, and counts zero-crossings. The returned slices are owned by
// the caller; pass reusable buffers via a Workspace to avoid allocation in
// hot loops (see Workspace.Find).
func Find(x []float64) Set {
	w := NewWorkspace(len(x))
	return w.Find(x)
}

// Workspace holds extrema-detection scratch buffers sized for the worst
// case (every sample an extremum), reused across sifting iterations.
type Workspace struct {
	maxX, maxY []float64
	minX, minY []float64
}

// NewWorkspace allocates scratch buffers for a signal of length n.
func NewWorkspace(n int) *Workspace {
	cap := n + 2
	return &Workspace{
		maxX: make([]float64, 0, cap),
		maxY: make([]float64, 0, cap),
		minX: make([]float64, 0, cap),
		minY: make([]float64, 0, cap),
	}
}

// Find detects extrema and zero-crossings in x, reusing the workspace's
// backing arrays. The returned Set's slices alias the workspace and are
// invalidated by the next call to Find.
func (w *Workspace) Find(x []float64) Set {
	w.maxX = w.maxX[:0]
	w.maxY = w.maxY[:0]
	w.minX = w.minX[:0]
	w.minY = w.minY[:0]

	n := len(x)
	if n == 0 {
		return Set{MaxX: w.maxX, MaxY: w.maxY, MinX: w.minX, MinY: w.minY}
	}

	i := 1
	for i < n-1 {
		switch {
		case x[i] > x[i-1] && x[i] > x[i+1]:
			w.maxX = append(w.maxX, float64(i))
			w.maxY = append(w.maxY, x[i])
			i++
		case x[i] < x[i-1] && x[i] < x[i+1]:
			w.minX = append(w.minX, float64(i))
			w.minY = append(w.minY, x[i])
			i++
		case x[i] == x[i+1]:
			j := i + 1
			for j < n-1 && x[j] == x[j+1] {
				j++
			}
			// Plateau spans [i, j]. Report a single extremum at its
			// midpoint if the plateau is strict relative to both
			// outer neighbours.
			if i > 0 && j < n-1 {
				mid := float64(i+j) / 2
				if x[i-1] < x[i] && x[j+1] < x[j] {
					w.maxX = append(w.maxX, mid)
					w.maxY = append(w.maxY, x[i])
				} else if x[i-1] > x[i] && x[j+1] > x[j] {
					w.minX = append(w.minX, mid)
					w.minY = append(w.minY, x[i])
				}
			}
			i = j + 1
		default:
			i++
		}
	}

	mirrorMax := mirrorBoundary(w.maxX, w.maxY, x, true)
	mirrorMin := mirrorBoundary(w.minX, w.minY, x, false)

	w.maxX, w.maxY = mirrorMax.x, mirrorMax.y
	w.minX, w.minY = mirrorMin.x, mirrorMin.y

	return Set{
		MaxX: w.maxX, MaxY: w.maxY,
		MinX: w.minX, MinY: w.minY,
		NumZC: countZeroCrossings(x),
	}
}

type boundaryResult struct{ x, y []float64 }

// mirrorBoundary prepends and appends a virtual extremum reflecting the
// first/last interior extremum across sample 0 and sample n-1, so the
// envelope can be evaluated across [0, n-1] without extrapolation. When the
// boundary sample itself is the more extreme value (e.g. the signal is
// still rising into the edge), the boundary sample's own value is used
// instead of the reflection.
func mirrorBoundary(xs, ys []float64, signal []float64, isMax bool) boundaryResult {
	n := len(signal)
	k := len(xs)

	leftX, leftY := 0.0, signal[0]
	if k > 0 {
		innerX, innerY := xs[0], ys[0]
		boundaryMoreExtreme := (isMax && signal[0] > innerY) || (!isMax && signal[0] < innerY)
		if boundaryMoreExtreme {
			leftY = signal[0]
		} else {
			leftX, leftY = -innerX, innerY
		}
	}

	rightX, rightY := float64(n-1), signal[n-1]
	if k > 0 {
		innerX, innerY := xs[k-1], ys[k-1]
		boundaryMoreExtreme := (isMax && signal[n-1] > innerY) || (!isMax && signal[n-1] < innerY)
		if boundaryMoreExtreme {
			rightY = signal[n-1]
		} else {
			rightX = float64(2*(n-1)) - innerX
			rightY = innerY
		}
	}

	// Shift the interior extrema up one slot in place; the workspace
	// buffers have room for the two endpoints, so this does not allocate.
	xs = append(xs, 0, 0)
	ys = append(ys, 0, 0)
	copy(xs[1:], xs[:k])
	copy(ys[1:], ys[:k])
	xs[0], ys[0] = leftX, leftY
	xs[k+1], ys[k+1] = rightX, rightY

	return boundaryResult{x: xs, y: ys}
}

// countZeroCrossings counts index transitions where sign(x[i]) != sign(x[i+1])
// and neither is exactly zero. A run of zeros counts as a single crossing
// at its first index.
func countZeroCrossings(x []float64) int {
	n := len(x)
	if n < 2 {
		return 0
	}

	count := 0
	i := 0
	prevSign := 0
	for i < n {
		switch {
		case x[i] > 0:
			prevSign = 1
		case x[i] < 0:
			prevSign = -1
		default:
			prevSign = 0
		}
		if prevSign != 0 {
			break
		}
		i++
	}
	if prevSign == 0 {
		return 0
	}

	j := i + 1
	for j < n {
		if x[j] == 0 {
			// A run of zeros: skip it, counting one crossing once we
			// reach the next nonzero sample of opposite sign.
			k := j
			for k < n && x[k] == 0 {
				k++
			}
			if k < n {
				sign := signOf(x[k])
				if sign != prevSign {
					count++
				}
				prevSign = sign
			}
			j = k + 1
			continue
		}
		sign := signOf(x[j])
		if sign != prevSign {
			count++
		}
		prevSign = sign
		j++
	}
	return count
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

// Interleave pairs I and J element by element into a flat [I0, J0, I1, J1, ...] index.
func (I Index) Interleave(J Index) (r Index) {
	n := len(I)
	if len(J) < n {
		n = len(J)
	}
	r = make(Index, 2*n)
	for i := 0; i < n; i++ {
		r[2*i], r[2*i+1] = I[i], J[i]
	}
	return
}

package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/polydata/types"
)

// NDArray is a dense, row-major numeric array with an explicit element type tag.
// Float element types are stored as float64, integral element types as int64; the
// tag records what the caller supplied so converters can check it at their boundary.
type NDArray struct {
	shape  Index
	dtype  types.DType
	floats []float64
	ints   []int64
}

// maxExtent bounds the product of the dimensions, zero dimensions counted as one, so that
// per-row allocations made from a shape stay addressable.
const maxExtent = math.MaxInt >> 6

func checkShape(n int, shape []int) (err error) {
	size, extent := 1, 1
	for _, s := range shape {
		if s < 0 {
			err = fmt.Errorf("negative dimension in shape %v", shape)
			return
		}
		if s > 1 {
			if extent > maxExtent/s {
				err = fmt.Errorf("shape %v is too large", shape)
				return
			}
			extent *= s
		}
		size *= s
	}
	if size != n {
		err = fmt.Errorf("mismatch in allocation: shape %v needs %d elements, len(data) = %d", shape, size, n)
	}
	return
}

// NewFloatArray wraps data with the given shape. A missing shape means a 1-D array of len(data).
func NewFloatArray(data []float64, shape ...int) (A *NDArray, err error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	if err = checkShape(len(data), shape); err != nil {
		return
	}
	A = &NDArray{
		shape:  append(Index{}, shape...),
		dtype:  types.Float64,
		floats: data,
	}
	return
}

func NewFloat32Array(data []float32, shape ...int) (A *NDArray, err error) {
	f64 := make([]float64, len(data))
	for i, val := range data {
		f64[i] = float64(val)
	}
	if A, err = NewFloatArray(f64, shape...); err != nil {
		return
	}
	A.dtype = types.Float32
	return
}

func NewIntArray(data []int, shape ...int) (A *NDArray, err error) {
	i64 := make([]int64, len(data))
	for i, val := range data {
		i64[i] = int64(val)
	}
	return newIntegral(i64, types.Int, shape)
}

func NewInt64Array(data []int64, shape ...int) (A *NDArray, err error) {
	return newIntegral(data, types.Int64, shape)
}

func NewInt32Array(data []int32, shape ...int) (A *NDArray, err error) {
	i64 := make([]int64, len(data))
	for i, val := range data {
		i64[i] = int64(val)
	}
	return newIntegral(i64, types.Int32, shape)
}

func newIntegral(data []int64, dt types.DType, shape []int) (A *NDArray, err error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	if err = checkShape(len(data), shape); err != nil {
		return
	}
	A = &NDArray{
		shape: append(Index{}, shape...),
		dtype: dt,
		ints:  data,
	}
	return
}

// NewFloatArrayFromRows builds an (n, m) Float64 array; all rows must have the same length.
func NewFloatArrayFromRows(rows [][]float64) (A *NDArray, err error) {
	nr, nc := len(rows), 0
	if nr != 0 {
		nc = len(rows[0])
	}
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("ragged rows: row %d has %d columns, expected %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	return NewFloatArray(data, nr, nc)
}

// NewIntArrayFromRows builds an (n, m) Int array; all rows must have the same length.
func NewIntArrayFromRows(rows [][]int) (A *NDArray, err error) {
	nr, nc := len(rows), 0
	if nr != 0 {
		nc = len(rows[0])
	}
	data := make([]int, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("ragged rows: row %d has %d columns, expected %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	return NewIntArray(data, nr, nc)
}

// NewArrayFromMatrix copies a gonum matrix into an (r, c) array. The element type defaults to
// Float64; passing an integral type requires every entry to hold an integer value, which is how
// connectivity stored in float matrices (EToV) is brought over.
func NewArrayFromMatrix(M mat.Matrix, dtypeO ...types.DType) (A *NDArray, err error) {
	var (
		nr, nc = M.Dims()
		data   = make([]float64, nr*nc)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			data[i*nc+j] = M.At(i, j)
		}
	}
	return newFromFloats(data, []int{nr, nc}, dtypeO)
}

// NewArrayFromVector copies a gonum vector into a 1-D array, see NewArrayFromMatrix for dtypeO.
func NewArrayFromVector(v mat.Vector, dtypeO ...types.DType) (A *NDArray, err error) {
	var (
		n    = v.Len()
		data = make([]float64, n)
	)
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return newFromFloats(data, []int{n}, dtypeO)
}

func newFromFloats(data []float64, shape []int, dtypeO []types.DType) (A *NDArray, err error) {
	dt := types.Float64
	if len(dtypeO) != 0 {
		dt = dtypeO[0]
	}
	switch {
	case !dt.IsValid():
		err = fmt.Errorf("unknown element type %s", dt)
		return
	case dt.IsFloat():
		if A, err = NewFloatArray(data, shape...); err != nil {
			return
		}
		A.dtype = dt
		return
	}
	ints := make([]int64, len(data))
	for i, val := range data {
		if val != math.Trunc(val) || math.IsInf(val, 0) {
			err = fmt.Errorf("value %v at element %d is not an integer, can not convert to %s", val, i, dt)
			return
		}
		ints[i] = int64(val)
	}
	return newIntegral(ints, dt, shape)
}

// AsType copies A into a new array of element type d. Integral types need integer values.
func (A *NDArray) AsType(d types.DType) (R *NDArray, err error) {
	data := make([]float64, A.Len())
	for i := range data {
		data[i] = A.Float(i)
	}
	return newFromFloats(data, A.shape, []types.DType{d})
}

// NewIndexArray wraps an Index as a 1-D Int array.
func NewIndexArray(I Index) (A *NDArray) {
	A, _ = NewIntArray(I)
	return
}

func (A *NDArray) DType() types.DType { return A.dtype }
func (A *NDArray) NDim() int          { return len(A.shape) }

// Shape returns a copy of the array dimensions.
func (A *NDArray) Shape() []int { return append([]int{}, A.shape...) }

// Len is the total number of elements.
func (A *NDArray) Len() int {
	if A.dtype.IsIntegral() {
		return len(A.ints)
	}
	return len(A.floats)
}

// Dims returns the first two dimensions, with missing ones reported as 1. Only meaningful for
// arrays of rank 2 or less.
func (A *NDArray) Dims() (r, c int) {
	r, c = 1, 1
	if len(A.shape) > 0 {
		r = A.shape[0]
	}
	if len(A.shape) > 1 {
		c = A.shape[1]
	}
	return
}

// Float returns the flat, row-major element i as a float64.
func (A *NDArray) Float(i int) float64 {
	if A.dtype.IsIntegral() {
		return float64(A.ints[i])
	}
	return A.floats[i]
}

// Int returns the flat, row-major element i; float elements are truncated.
func (A *NDArray) Int(i int) int {
	if A.dtype.IsIntegral() {
		return int(A.ints[i])
	}
	return int(A.floats[i])
}

func (A *NDArray) FloatAt(i, j int) float64 { return A.Float(i*A.shape[1] + j) }
func (A *NDArray) IntAt(i, j int) int       { return A.Int(i*A.shape[1] + j) }

// Reshape returns a view of the same data with a new shape of equal size.
func (A *NDArray) Reshape(shape ...int) (R *NDArray, err error) {
	if err = checkShape(A.Len(), shape); err != nil {
		return
	}
	R = &NDArray{
		shape:  append(Index{}, shape...),
		dtype:  A.dtype,
		floats: A.floats,
		ints:   A.ints,
	}
	return
}

func (A *NDArray) String() string {
	return fmt.Sprintf("NDArray%v[%s]", []int(A.shape), A.dtype)
}

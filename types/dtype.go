package types

import "fmt"

// DType is the element type carried by a numeric array.
type DType uint8

const (
	Float64 DType = iota
	Float32
	Int64
	Int32
	Int
)

var dtypeNames = [...]string{"float64", "float32", "int64", "int32", "int"}

func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return fmt.Sprintf("DType(%d)", uint8(d))
}

func (d DType) IsIntegral() bool {
	switch d {
	case Int64, Int32, Int:
		return true
	}
	return false
}

func (d DType) IsFloat() bool {
	return d == Float64 || d == Float32
}

// IsValid reports whether d names one of the known numeric types.
func (d DType) IsValid() bool {
	return int(d) < len(dtypeNames)
}

var dtypeNameMap = map[string]DType{
	"float64": Float64,
	"double":  Float64,
	"float32": Float32,
	"float":   Float32,
	"int64":   Int64,
	"int32":   Int32,
	"int":     Int,
}

func NewDType(name string) (d DType, err error) {
	var ok bool
	if d, ok = dtypeNameMap[name]; !ok {
		err = fmt.Errorf("unknown element type: [%s]", name)
	}
	return
}

package javaio

// Content is a decoded stream element. Implementations are *String,
// *ClassDesc, *Object, *Array, *Enum and *BlockData. Strings, class
// descriptors, objects, arrays and enums occupy wire handles and may
// be shared across the tree through TC_REFERENCE; block data does not.
type Content interface {
	content()
}

// String holds the payload of a TC_STRING or TC_LONGSTRING. Data is
// the modified UTF-8 payload exactly as it appeared on the wire.
type String struct {
	Long bool // written as TC_LONGSTRING
	Data []byte
}

func (s *String) Value() string { return string(s.Data) }

// ClassDesc describes a serialized class. It is immutable once the
// descriptor production has been read; per-object field values and
// annotations live in the ClassData of each Object that refers to it.
type ClassDesc struct {
	Name             string
	SerialVersionUID int64
	Info             ClassDescInfo
}

type ClassDescInfo struct {
	Flags      byte
	Fields     []FieldDesc
	Annotation []Content
	Super      *ClassDesc
}

// FieldDesc declares one serializable field. ClassName is set only for
// type codes '[' and 'L'.
type FieldDesc struct {
	TypeCode  byte
	Name      string
	ClassName *String
}

// Object is a decoded TC_OBJECT. ClassData holds one entry per level
// of the class hierarchy, top-most superclass first, in the order the
// values appeared on the wire.
type Object struct {
	Desc      *ClassDesc
	ClassData []ClassData
}

// Field returns the value of the named field, searching the hierarchy
// from the most derived class upwards.
func (o *Object) Field(name string) (interface{}, bool) {
	for i := len(o.ClassData) - 1; i >= 0; i-- {
		if v, ok := o.ClassData[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// ClassData holds the decoded contents of one hierarchy level of an
// object: declared field values in declaration order, plus the
// annotation written by a writeObject or writeExternal method, if any.
type ClassData struct {
	Desc       *ClassDesc
	Fields     []Field
	Annotation []Content
}

func (cd *ClassData) Get(name string) (interface{}, bool) {
	for _, f := range cd.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Field pairs a field name with its decoded value. Primitive values
// are int8, uint16, float64, float32, int32, int64, int16 or bool;
// reference values are Content nodes or nil for TC_NULL.
type Field struct {
	Name  string
	Value interface{}
}

// Array is a decoded TC_ARRAY. The element type is given by the
// second character of the descriptor's class name.
type Array struct {
	Desc   *ClassDesc
	Values []interface{}
}

// Enum is a decoded TC_ENUM constant.
type Enum struct {
	Desc     *ClassDesc
	Constant *String
}

// BlockData holds raw bytes written between structured fields by
// custom writer methods.
type BlockData struct {
	Long bool // written as TC_BLOCKDATALONG
	Data []byte
}

func (*String) content()    {}
func (*ClassDesc) content() {}
func (*Object) content()    {}
func (*Array) content()     {}
func (*Enum) content()      {}
func (*BlockData) content() {}

package javaio

import "fmt"

// readContent decodes one element of the contents grammar. The same
// production covers top-level contents and annotation regions.
func (ois *ObjectInputStream) readContent() (Content, error) {
	pos := ois.src.Pos()
	tc, err := ois.src.Peek()
	if err != nil {
		return nil, err
	}
	switch tc {
	case TcObject:
		return ois.readNewObject()
	case TcString, TcLongstring:
		return ois.readNewString()
	case TcBlockdata, TcBlockdatalong:
		return ois.readBlockData()
	case TcArray:
		return ois.readNewArray()
	case TcEnum:
		return ois.readNewEnum()
	case TcReference:
		return ois.readPrevObject()
	default:
		return nil, &BadTypeCodeError{Context: "readContent", Code: tc, Pos: pos}
	}
}

// readPrevObject resolves a TC_REFERENCE through the handle table.
// The resolved node is returned as-is: descriptors are immutable and
// objects own their class data, so sharing the identity is safe.
func (ois *ObjectInputStream) readPrevObject() (Content, error) {
	if err := ois.src.Skip(1); err != nil {
		return nil, err
	}
	handle, err := ois.src.ReadInt32()
	if err != nil {
		return nil, err
	}
	return ois.handles.resolve(handle)
}

// readNewString decodes a TC_STRING or TC_LONGSTRING. The handle is
// assigned before the payload is read.
func (ois *ObjectInputStream) readNewString() (*String, error) {
	tc, err := ois.src.ReadUint8()
	if err != nil {
		return nil, err
	}
	s := &String{}
	ois.handles.allocate(s)
	switch tc {
	case TcString:
		l, err := ois.src.ReadUint16()
		if err != nil {
			return nil, err
		}
		s.Data, err = ois.src.Read(int(l))
		if err != nil {
			return nil, err
		}
	case TcLongstring:
		s.Long = true
		l, err := ois.src.ReadInt64()
		if err != nil {
			return nil, err
		}
		if l < 0 {
			return nil, &BadBlockSizeError{Size: l}
		}
		s.Data, err = ois.src.Read(int(l))
		if err != nil {
			return nil, err
		}
	default:
		return nil, &BadTypeCodeError{Context: "readNewString", Code: tc, Pos: ois.src.Pos() - 1}
	}
	return s, nil
}

// readString decodes the newString production in positions where a
// string is required: TC_STRING, TC_LONGSTRING or a reference to a
// previously written string.
func (ois *ObjectInputStream) readString() (*String, error) {
	pos := ois.src.Pos()
	tc, err := ois.src.Peek()
	if err != nil {
		return nil, err
	}
	switch tc {
	case TcString, TcLongstring:
		return ois.readNewString()
	case TcReference:
		v, err := ois.readPrevObject()
		if err != nil {
			return nil, err
		}
		s, ok := v.(*String)
		if !ok {
			return nil, fmt.Errorf("javaio: readString: reference is not a string")
		}
		return s, nil
	default:
		return nil, &BadTypeCodeError{Context: "readString", Code: tc, Pos: pos}
	}
}

// readBlockData decodes a TC_BLOCKDATA (unsigned 8-bit length) or
// TC_BLOCKDATALONG (signed 32-bit length) record. No handle.
func (ois *ObjectInputStream) readBlockData() (*BlockData, error) {
	tc, err := ois.src.ReadUint8()
	if err != nil {
		return nil, err
	}
	block := &BlockData{}
	switch tc {
	case TcBlockdata:
		l, err := ois.src.ReadUint8()
		if err != nil {
			return nil, err
		}
		block.Data, err = ois.src.Read(int(l))
		if err != nil {
			return nil, err
		}
	case TcBlockdatalong:
		block.Long = true
		l, err := ois.src.ReadInt32()
		if err != nil {
			return nil, err
		}
		if l < 0 {
			return nil, &BadBlockSizeError{Size: int64(l)}
		}
		block.Data, err = ois.src.Read(int(l))
		if err != nil {
			return nil, err
		}
	default:
		return nil, &BadTypeCodeError{Context: "readBlockData", Code: tc, Pos: ois.src.Pos() - 1}
	}
	return block, nil
}

// readClassDesc decodes the classDesc production: null, a new
// descriptor, or a reference to one already in the handle table.
func (ois *ObjectInputStream) readClassDesc() (*ClassDesc, error) {
	pos := ois.src.Pos()
	tc, err := ois.src.Peek()
	if err != nil {
		return nil, err
	}
	switch tc {
	case TcNull:
		if err := ois.src.Skip(1); err != nil {
			return nil, err
		}
		return nil, nil
	case TcClassdesc:
		return ois.readNewClassDesc()
	case TcProxyclassdesc:
		return nil, ErrProxyClassDesc
	case TcReference:
		v, err := ois.readPrevObject()
		if err != nil {
			return nil, err
		}
		desc, ok := v.(*ClassDesc)
		if !ok {
			return nil, fmt.Errorf("javaio: readClassDesc: reference is not a class descriptor")
		}
		return desc, nil
	default:
		return nil, &BadTypeCodeError{Context: "readClassDesc", Code: tc, Pos: pos}
	}
}

// readNewClassDesc decodes a TC_CLASSDESC. The handle is assigned
// after the name and serialVersionUID but before classDescInfo, so
// that references inside the field descriptors and the super chain
// can target this descriptor.
func (ois *ObjectInputStream) readNewClassDesc() (*ClassDesc, error) {
	if err := ois.src.Skip(1); err != nil {
		return nil, err
	}
	name, err := ois.readUTF()
	if err != nil {
		return nil, err
	}
	suid, err := ois.src.ReadInt64()
	if err != nil {
		return nil, err
	}
	desc := &ClassDesc{Name: name, SerialVersionUID: suid}
	ois.handles.allocate(desc)

	desc.Info.Flags, err = ois.src.ReadUint8()
	if err != nil {
		return nil, err
	}
	numFields, err := ois.src.ReadUint16()
	if err != nil {
		return nil, err
	}
	fields := make([]FieldDesc, 0, int(numFields))
	for i := 0; i < int(numFields); i++ {
		field, err := ois.readFieldDesc()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	desc.Info.Fields = fields

	desc.Info.Annotation, err = ois.readAnnotation()
	if err != nil {
		return nil, err
	}
	desc.Info.Super, err = ois.readClassDesc()
	if err != nil {
		return nil, err
	}
	return desc, nil
}

func (ois *ObjectInputStream) readFieldDesc() (FieldDesc, error) {
	code, err := ois.src.ReadUint8()
	if err != nil {
		return FieldDesc{}, err
	}
	switch code {
	case TypeByte, TypeChar, TypeDouble, TypeFloat, TypeInt, TypeLong, TypeShort, TypeBoolean, TypeArray, TypeObject:
	default:
		return FieldDesc{}, &BadFieldTypeError{Code: code}
	}
	name, err := ois.readUTF()
	if err != nil {
		return FieldDesc{}, err
	}
	field := FieldDesc{TypeCode: code, Name: name}
	if code == TypeArray || code == TypeObject {
		field.ClassName, err = ois.readString()
		if err != nil {
			return FieldDesc{}, err
		}
	}
	return field, nil
}

// readAnnotation consumes contents up to and including exactly one
// TC_ENDBLOCKDATA.
func (ois *ObjectInputStream) readAnnotation() ([]Content, error) {
	var annotation []Content
	for {
		tc, err := ois.src.Peek()
		if err != nil {
			return nil, err
		}
		if tc == TcEndblockdata {
			if err := ois.src.Skip(1); err != nil {
				return nil, err
			}
			return annotation, nil
		}
		c, err := ois.readContent()
		if err != nil {
			return nil, err
		}
		annotation = append(annotation, c)
	}
}

// readNewObject decodes a TC_OBJECT. The handle is assigned before the
// class data is read so that back-references from within the data
// resolve to this object. Class data is decoded per hierarchy level,
// top-most superclass first.
func (ois *ObjectInputStream) readNewObject() (*Object, error) {
	if err := ois.src.Skip(1); err != nil {
		return nil, err
	}
	desc, err := ois.readClassDesc()
	if err != nil {
		return nil, err
	}
	object := &Object{Desc: desc}
	ois.handles.allocate(object)

	var chain []*ClassDesc
	for d := desc; d != nil; d = d.Info.Super {
		chain = append(chain, d)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		data, err := ois.readClassData(chain[i])
		if err != nil {
			return nil, err
		}
		object.ClassData = append(object.ClassData, data)
	}
	return object, nil
}

// readClassData decodes one hierarchy level of an object's data per
// the descriptor flags: declared field values for SC_SERIALIZABLE,
// followed by an annotation if SC_WRITE_METHOD; an annotation only
// for SC_EXTERNALIZABLE with SC_BLOCKDATA.
func (ois *ObjectInputStream) readClassData(desc *ClassDesc) (ClassData, error) {
	data := ClassData{Desc: desc}
	flags := desc.Info.Flags
	serializable := flags&ScSerializable != 0
	externalizable := flags&ScExternalizable != 0
	switch {
	case serializable && !externalizable:
		for _, field := range desc.Info.Fields {
			v, err := ois.readFieldValue(field.TypeCode)
			if err != nil {
				return ClassData{}, err
			}
			data.Fields = append(data.Fields, Field{Name: field.Name, Value: v})
		}
		if flags&ScWriteMethod != 0 {
			annotation, err := ois.readAnnotation()
			if err != nil {
				return ClassData{}, err
			}
			data.Annotation = annotation
		}
	case externalizable && !serializable:
		if flags&ScBlockData == 0 {
			return ClassData{}, ErrExternalContents
		}
		annotation, err := ois.readAnnotation()
		if err != nil {
			return ClassData{}, err
		}
		data.Annotation = annotation
	default:
		return ClassData{}, &BadFlagsError{Flags: flags}
	}
	return data, nil
}

// readFieldValue decodes one value of the given field type code.
func (ois *ObjectInputStream) readFieldValue(code byte) (interface{}, error) {
	switch code {
	case TypeByte:
		return ois.src.ReadInt8()
	case TypeChar:
		return ois.src.ReadUint16()
	case TypeDouble:
		return ois.src.ReadFloat64()
	case TypeFloat:
		return ois.src.ReadFloat32()
	case TypeInt:
		return ois.src.ReadInt32()
	case TypeLong:
		return ois.src.ReadInt64()
	case TypeShort:
		return ois.src.ReadInt16()
	case TypeBoolean:
		return ois.src.ReadBool()
	case TypeArray:
		return ois.readArrayField()
	case TypeObject:
		return ois.readObjectField()
	default:
		return nil, &BadFieldTypeError{Code: code}
	}
}

func (ois *ObjectInputStream) readArrayField() (interface{}, error) {
	pos := ois.src.Pos()
	tc, err := ois.src.Peek()
	if err != nil {
		return nil, err
	}
	switch tc {
	case TcNull:
		if err := ois.src.Skip(1); err != nil {
			return nil, err
		}
		return nil, nil
	case TcArray:
		return ois.readNewArray()
	case TcReference:
		return ois.readPrevObject()
	default:
		return nil, &BadTypeCodeError{Context: "readArrayField", Code: tc, Pos: pos}
	}
}

func (ois *ObjectInputStream) readObjectField() (interface{}, error) {
	pos := ois.src.Pos()
	tc, err := ois.src.Peek()
	if err != nil {
		return nil, err
	}
	switch tc {
	case TcNull:
		if err := ois.src.Skip(1); err != nil {
			return nil, err
		}
		return nil, nil
	case TcObject:
		return ois.readNewObject()
	case TcString, TcLongstring:
		return ois.readNewString()
	case TcEnum:
		return ois.readNewEnum()
	case TcReference:
		return ois.readPrevObject()
	default:
		return nil, &BadTypeCodeError{Context: "readObjectField", Code: tc, Pos: pos}
	}
}

// readNewArray decodes a TC_ARRAY. The element type is the second
// character of the array class name, e.g. '[B' holds bytes.
func (ois *ObjectInputStream) readNewArray() (*Array, error) {
	if err := ois.src.Skip(1); err != nil {
		return nil, err
	}
	desc, err := ois.readClassDesc()
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, fmt.Errorf("javaio: readNewArray: null class descriptor")
	}
	array := &Array{Desc: desc}
	ois.handles.allocate(array)

	size, err := ois.src.ReadInt32()
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, &BadBlockSizeError{Size: int64(size)}
	}
	if len(desc.Name) < 2 || desc.Name[0] != '[' {
		return nil, fmt.Errorf("javaio: readNewArray: invalid array class name %q", desc.Name)
	}
	elem := desc.Name[1]
	array.Values = make([]interface{}, 0, int(size))
	for i := 0; i < int(size); i++ {
		v, err := ois.readFieldValue(elem)
		if err != nil {
			return nil, err
		}
		array.Values = append(array.Values, v)
	}
	return array, nil
}

// readNewEnum decodes a TC_ENUM: class descriptor, handle, then the
// constant name via the newString production.
func (ois *ObjectInputStream) readNewEnum() (*Enum, error) {
	if err := ois.src.Skip(1); err != nil {
		return nil, err
	}
	desc, err := ois.readClassDesc()
	if err != nil {
		return nil, err
	}
	enum := &Enum{Desc: desc}
	ois.handles.allocate(enum)
	enum.Constant, err = ois.readString()
	if err != nil {
		return nil, err
	}
	return enum, nil
}

package javaio

import "fmt"

// ObjectInputStream decodes the Java Object Serialization Stream
// Protocol (stream version 5) into a generic tree of Content nodes.
// It does not instantiate classes; callers walk the decoded tree.
type ObjectInputStream struct {
	src     ByteSource
	handles handleTable
}

// NewObjectInputStream validates the stream header and returns a
// decoder positioned at the first content element.
func NewObjectInputStream(src ByteSource) (*ObjectInputStream, error) {
	ois := &ObjectInputStream{src: src}
	if err := ois.readHeader(); err != nil {
		return nil, err
	}
	return ois, nil
}

func (ois *ObjectInputStream) readHeader() error {
	magic, err := ois.src.ReadUint16()
	if err != nil {
		return err
	}
	if magic != StreamMagic {
		return fmt.Errorf("%w: magic 0x%04X", ErrBadHeader, magic)
	}
	version, err := ois.src.ReadUint16()
	if err != nil {
		return err
	}
	if version != StreamVersion {
		return fmt.Errorf("%w: version %d", ErrBadHeader, version)
	}
	return nil
}

// ReadAll decodes top-level contents until the source is exhausted.
// On error no partial result is returned.
func (ois *ObjectInputStream) ReadAll() ([]Content, error) {
	contents := []Content{}
	for ois.src.HasDataLeft() {
		c, err := ois.readContent()
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// Primitive readers, thin pass-throughs to the byte source. Each reads
// at the source's current position; none of them reads from a decoded
// BlockData payload. ReadAll consumes the source to its end, so after
// ReadAll these fail with io.ErrUnexpectedEOF.

func (ois *ObjectInputStream) ReadBoolean() (bool, error)   { return ois.src.ReadBool() }
func (ois *ObjectInputStream) ReadByte() (int8, error)      { return ois.src.ReadInt8() }
func (ois *ObjectInputStream) ReadChar() (uint16, error)    { return ois.src.ReadUint16() }
func (ois *ObjectInputStream) ReadDouble() (float64, error) { return ois.src.ReadFloat64() }
func (ois *ObjectInputStream) ReadFloat() (float32, error)  { return ois.src.ReadFloat32() }
func (ois *ObjectInputStream) ReadInt() (int32, error)      { return ois.src.ReadInt32() }
func (ois *ObjectInputStream) ReadLong() (int64, error)     { return ois.src.ReadInt64() }
func (ois *ObjectInputStream) ReadShort() (int16, error)    { return ois.src.ReadInt16() }

func (ois *ObjectInputStream) ReadUnsignedByte() (uint8, error)   { return ois.src.ReadUint8() }
func (ois *ObjectInputStream) ReadUnsignedShort() (uint16, error) { return ois.src.ReadUint16() }

// ReadUTF reads a 16-bit-length-prefixed modified UTF-8 string.
func (ois *ObjectInputStream) ReadUTF() (string, error) {
	return ois.readUTF()
}

// ReadLongUTF reads a 64-bit-length-prefixed modified UTF-8 string.
func (ois *ObjectInputStream) ReadLongUTF() (string, error) {
	p, err := ois.readLongUTFBytes()
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (ois *ObjectInputStream) readUTF() (string, error) {
	l, err := ois.src.ReadUint16()
	if err != nil {
		return "", err
	}
	p, err := ois.src.Read(int(l))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (ois *ObjectInputStream) readLongUTFBytes() ([]byte, error) {
	l, err := ois.src.ReadInt64()
	if err != nil {
		return nil, err
	}
	if l < 0 {
		return nil, &BadBlockSizeError{Size: l}
	}
	return ois.src.Read(int(l))
}

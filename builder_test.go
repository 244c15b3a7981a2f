package javaio

import (
	"bytes"
	"encoding/binary"
)

// streamBuilder composes serialization streams for tests: a stream
// header followed by big-endian writes, the way ObjectOutputStream
// lays them out.
type streamBuilder struct {
	buf bytes.Buffer
}

func newStreamBuilder() *streamBuilder {
	b := &streamBuilder{}
	return b.raw(StreamMagic, StreamVersion)
}

func (b *streamBuilder) raw(values ...interface{}) *streamBuilder {
	for _, v := range values {
		if err := binary.Write(&b.buf, binary.BigEndian, v); err != nil {
			panic(err)
		}
	}
	return b
}

func (b *streamBuilder) utf(s string) *streamBuilder {
	return b.raw(uint16(len(s)), []byte(s))
}

func (b *streamBuilder) str(s string) *streamBuilder {
	return b.raw(TcString).utf(s)
}

func (b *streamBuilder) ref(handle int32) *streamBuilder {
	return b.raw(TcReference, handle)
}

func (b *streamBuilder) null() *streamBuilder {
	return b.raw(TcNull)
}

func (b *streamBuilder) endBlock() *streamBuilder {
	return b.raw(TcEndblockdata)
}

// classDesc starts a TC_CLASSDESC up to the field count; the caller
// appends field descriptors, the class annotation terminator and the
// super descriptor.
func (b *streamBuilder) classDesc(name string, suid int64, flags byte, numFields uint16) *streamBuilder {
	return b.raw(TcClassdesc).utf(name).raw(suid, flags, numFields)
}

// simpleClassDesc writes a field-less descriptor with an empty class
// annotation and a null super.
func (b *streamBuilder) simpleClassDesc(name string, suid int64, flags byte) *streamBuilder {
	return b.classDesc(name, suid, flags, 0).endBlock().null()
}

func (b *streamBuilder) primField(code byte, name string) *streamBuilder {
	return b.raw(code).utf(name)
}

func (b *streamBuilder) objField(code byte, name, className string) *streamBuilder {
	return b.raw(code).utf(name).str(className)
}

func (b *streamBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func (b *streamBuilder) source() *BytesSource {
	return NewBytesSource(b.bytes())
}

func (b *streamBuilder) decode() ([]Content, error) {
	ois, err := NewObjectInputStream(b.source())
	if err != nil {
		return nil, err
	}
	return ois.ReadAll()
}

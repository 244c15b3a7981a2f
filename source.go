package javaio

import (
	"encoding/binary"
	"io"
	"math"
)

// ByteSource supplies the decoder with big-endian primitives, bounded
// reads and one-byte lookahead over an underlying byte stream. A read
// past end-of-stream fails with io.ErrUnexpectedEOF.
type ByteSource interface {
	HasDataLeft() bool
	Pos() int64
	Peek() (byte, error)
	Skip(n int) error
	Read(n int) ([]byte, error)
	ReadBool() (bool, error)
	ReadInt8() (int8, error)
	ReadUint8() (uint8, error)
	ReadInt16() (int16, error)
	ReadUint16() (uint16, error)
	ReadInt32() (int32, error)
	ReadInt64() (int64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
}

// BytesSource is an in-memory ByteSource over a byte slice.
type BytesSource struct {
	data   []byte
	offset int
}

func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

func (s *BytesSource) HasDataLeft() bool {
	return s.offset < len(s.data)
}

func (s *BytesSource) Pos() int64 {
	return int64(s.offset)
}

func (s *BytesSource) Peek() (byte, error) {
	if s.offset >= len(s.data) {
		return 0, io.ErrUnexpectedEOF
	}
	return s.data[s.offset], nil
}

func (s *BytesSource) Skip(n int) error {
	if n < 0 || s.offset+n > len(s.data) {
		return io.ErrUnexpectedEOF
	}
	s.offset += n
	return nil
}

// Read returns the next n bytes. The returned slice aliases the
// underlying buffer and must not be modified.
func (s *BytesSource) Read(n int) ([]byte, error) {
	if n < 0 || s.offset+n > len(s.data) {
		return nil, io.ErrUnexpectedEOF
	}
	p := s.data[s.offset : s.offset+n]
	s.offset += n
	return p, nil
}

func (s *BytesSource) ReadBool() (bool, error) {
	b, err := s.ReadUint8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (s *BytesSource) ReadInt8() (int8, error) {
	b, err := s.ReadUint8()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

func (s *BytesSource) ReadUint8() (uint8, error) {
	if s.offset >= len(s.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := s.data[s.offset]
	s.offset++
	return b, nil
}

func (s *BytesSource) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func (s *BytesSource) ReadUint16() (uint16, error) {
	p, err := s.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (s *BytesSource) ReadInt32() (int32, error) {
	p, err := s.Read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (s *BytesSource) ReadInt64() (int64, error) {
	p, err := s.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (s *BytesSource) ReadFloat32() (float32, error) {
	p, err := s.Read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
}

func (s *BytesSource) ReadFloat64() (float64, error) {
	p, err := s.Read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

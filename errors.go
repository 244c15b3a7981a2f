package javaio

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHeader is returned when the stream does not begin with
	// STREAM_MAGIC followed by STREAM_VERSION 5.
	ErrBadHeader = errors.New("javaio: invalid stream header")

	// ErrProxyClassDesc is returned when a TC_PROXYCLASSDESC is
	// encountered; dynamic proxy descriptors are not supported.
	ErrProxyClassDesc = errors.New("javaio: proxy class descriptors not supported")

	// ErrExternalContents is returned for SC_EXTERNALIZABLE descriptors
	// without SC_BLOCKDATA, i.e. protocol version 1 external contents.
	ErrExternalContents = errors.New("javaio: externalizable protocol version 1 contents not supported")
)

// BadTypeCodeError reports a tag byte outside the set permitted by the
// production being parsed. Pos is the stream offset of the tag.
type BadTypeCodeError struct {
	Context string
	Code    byte
	Pos     int64
}

func (e *BadTypeCodeError) Error() string {
	return fmt.Sprintf("javaio: %s: invalid type code 0x%02X at offset %d", e.Context, e.Code, e.Pos)
}

// BadHandleError reports a TC_REFERENCE to a handle that has not been
// allocated.
type BadHandleError struct {
	Handle int32
}

func (e *BadHandleError) Error() string {
	return fmt.Sprintf("javaio: invalid handle value 0x%08X", uint32(e.Handle))
}

// BadFlagsError reports a classDescFlags byte carrying neither
// SC_SERIALIZABLE nor SC_EXTERNALIZABLE, or both.
type BadFlagsError struct {
	Flags byte
}

func (e *BadFlagsError) Error() string {
	return fmt.Sprintf("javaio: invalid class descriptor flags 0x%02X", e.Flags)
}

// BadBlockSizeError reports a negative length prefix on a block data
// record, long string or array.
type BadBlockSizeError struct {
	Size int64
}

func (e *BadBlockSizeError) Error() string {
	return fmt.Sprintf("javaio: invalid length %d", e.Size)
}

// BadFieldTypeError reports an unknown field type code in a fieldDesc
// or array element position.
type BadFieldTypeError struct {
	Code byte
}

func (e *BadFieldTypeError) Error() string {
	return fmt.Sprintf("javaio: invalid field type code 0x%02X", e.Code)
}

package javaio

// The following symbols in `java.io.ObjectStreamConstants` define
// the terminal and constant values expected in a stream.
const (
	StreamMagic   uint16 = 0xaced
	StreamVersion uint16 = 5

	TcNull           byte = 0x70
	TcReference      byte = 0x71
	TcClassdesc      byte = 0x72
	TcObject         byte = 0x73
	TcString         byte = 0x74
	TcArray          byte = 0x75
	TcClass          byte = 0x76
	TcBlockdata      byte = 0x77
	TcEndblockdata   byte = 0x78
	TcReset          byte = 0x79
	TcBlockdatalong  byte = 0x7A
	TcException      byte = 0x7B
	TcLongstring     byte = 0x7C
	TcProxyclassdesc byte = 0x7D
	TcEnum           byte = 0x7E

	baseWireHandle int32 = 0x7E0000
)

// The flag byte classDescFlags may include values of
const (
	ScWriteMethod    byte = 0x01 // if SC_SERIALIZABLE
	ScSerializable   byte = 0x02
	ScExternalizable byte = 0x04
	ScBlockData      byte = 0x08 // if SC_EXTERNALIZABLE
	ScEnum           byte = 0x10
)

// Field type codes as they appear in a fieldDesc. 'B'..'Z' are the
// primitive codes; '[' and 'L' carry a trailing class-name string.
const (
	TypeByte    byte = 'B'
	TypeChar    byte = 'C'
	TypeDouble  byte = 'D'
	TypeFloat   byte = 'F'
	TypeInt     byte = 'I'
	TypeLong    byte = 'J'
	TypeShort   byte = 'S'
	TypeBoolean byte = 'Z'
	TypeArray   byte = '['
	TypeObject  byte = 'L'
)

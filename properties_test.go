package javaio

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPrimitiveFieldRoundTrip(t *testing.T) {
	codes := []byte{TypeByte, TypeChar, TypeDouble, TypeFloat, TypeInt, TypeLong, TypeShort, TypeBoolean}
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.SampledFrom(codes).Draw(t, "code")

		b := newStreamBuilder()
		b.raw(TcObject).classDesc("P", 1, ScSerializable, 1).primField(code, "v").endBlock().null()

		var want interface{}
		switch code {
		case TypeByte:
			v := rapid.Int8().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeChar:
			v := rapid.Uint16().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeDouble:
			v := rapid.Float64().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeFloat:
			v := rapid.Float32().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeInt:
			v := rapid.Int32().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeLong:
			v := rapid.Int64().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeShort:
			v := rapid.Int16().Draw(t, "v")
			want = v
			b.raw(v)
		case TypeBoolean:
			v := rapid.Bool().Draw(t, "v")
			want = v
			b.raw(v)
		}

		contents, err := b.decode()
		require.NoError(t, err)
		require.Len(t, contents, 1)

		got, ok := contents[0].(*Object).Field("v")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})
}

func TestHandleAssignmentOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")

		b := newStreamBuilder()
		values := make([]string, n)
		for i := range values {
			values[i] = rapid.StringN(0, 32, -1).Draw(t, fmt.Sprintf("s%d", i))
			b.str(values[i])
		}
		for i := 0; i < n; i++ {
			b.ref(baseWireHandle + int32(i))
		}

		ois, err := NewObjectInputStream(b.source())
		require.NoError(t, err)
		contents, err := ois.ReadAll()
		require.NoError(t, err)
		require.Len(t, contents, 2*n)
		require.Len(t, ois.handles.entities, n)

		for i := 0; i < n; i++ {
			s, ok := contents[i].(*String)
			require.True(t, ok)
			assert.Equal(t, values[i], s.Value())
			// Handles are assigned in stream order...
			assert.Same(t, s, ois.handles.entities[i])
			// ...and every reference resolves to the node allocated there.
			assert.Same(t, s, contents[n+i])
		}
	})
}

func TestDeterministicDecode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := newStreamBuilder()
		n := rapid.IntRange(0, 8).Draw(t, "n")
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("kind%d", i)) {
			case 0:
				b.str(rapid.StringN(0, 16, -1).Draw(t, fmt.Sprintf("str%d", i)))
			case 1:
				data := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, fmt.Sprintf("block%d", i))
				b.raw(TcBlockdata, uint8(len(data)), data)
			case 2:
				data := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, fmt.Sprintf("longblock%d", i))
				b.raw(TcBlockdatalong, int32(len(data)), data)
			case 3:
				b.raw(TcObject).classDesc("C", int64(i), ScSerializable, 1).primField(TypeInt, "x").endBlock().null()
				b.raw(rapid.Int32().Draw(t, fmt.Sprintf("x%d", i)))
			}
		}
		data := b.bytes()

		decodeOnce := func() []Content {
			ois, err := NewObjectInputStream(NewBytesSource(data))
			require.NoError(t, err)
			contents, err := ois.ReadAll()
			require.NoError(t, err)
			return contents
		}

		if diff := cmp.Diff(decodeOnce(), decodeOnce()); diff != "" {
			t.Fatalf("two decodes of the same bytes differ (-first +second):\n%s", diff)
		}
	})
}

func TestAnnotationDelimiting(t *testing.T) {
	// The annotation region ends at exactly one TC_ENDBLOCKDATA; what
	// follows belongs to the enclosing production.
	b := newStreamBuilder()
	b.raw(TcObject).classDesc("W", 1, ScSerializable|ScWriteMethod, 0).endBlock().null()
	b.raw(TcBlockdata, uint8(1), []byte{0x01}).endBlock()
	b.str("after")

	contents, err := b.decode()
	require.NoError(t, err)
	require.Len(t, contents, 2)

	object := contents[0].(*Object)
	require.Len(t, object.ClassData, 1)
	require.Len(t, object.ClassData[0].Annotation, 1)
	assert.Equal(t, []byte{0x01}, object.ClassData[0].Annotation[0].(*BlockData).Data)
	assert.Equal(t, "after", contents[1].(*String).Value())
}

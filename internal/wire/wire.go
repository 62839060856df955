package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncatedVarint is returned when the buffer ends before a varint's
	// terminating byte.
	ErrTruncatedVarint = errors.New("truncated varint")
	// ErrVarintOverflow is returned when a varint encodes more than 64 bits.
	ErrVarintOverflow = errors.New("varint exceeds 64 bits")
	// ErrTruncatedMessage is returned when a field's declared size runs past
	// the end of the message body.
	ErrTruncatedMessage = errors.New("truncated message")
	// ErrBadWireType is returned for tags whose wire type this format never
	// carries.
	ErrBadWireType = errors.New("unsupported wire type")
)

// Type is a protobuf wire type code, the low three bits of a field tag.
type Type byte

const (
	TypeVarint Type = 0
	TypeI64    Type = 1
	TypeLen    Type = 2
	TypeI32    Type = 5

	// Types 3 and 4 are the obsolete group markers; 6 and 7 are unassigned.
	// All four decode as ErrBadWireType.
)

var typeName = [...]string{
	TypeVarint: "varint",
	TypeI64:    "i64",
	TypeLen:    "len",
	TypeI32:    "i32",
}

// String names the wire type for diagnostics. Codes without a name render
// numerically.
func (t Type) String() string {
	if int(t) < len(typeName) && typeName[t] != "" {
		return typeName[t]
	}
	return fmt.Sprintf("type:%d", byte(t))
}

// A Field is one decoded tag/value pair.
//
// Which half of the value is meaningful follows from Type: varint and
// fixed-width fields carry Value, length-prefixed fields carry Bytes. Bytes
// aliases the decoder's input and stays valid for as long as the input does.
type Field struct {
	Number uint64 // field number from the tag
	Type   Type   // physical encoding
	Value  uint64 // varint, i32 or i64 value
	Bytes  []byte // len value, aliasing the input buffer
}

// A Decoder walks the fields of one message body. It is single-pass: each
// call to Next consumes one field, and a decoder cannot be rewound.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a Decoder over the message body in buf.
func NewDecoder(buf []byte) *Decoder { return &Decoder{buf: buf} }

// Pos reports the offset of the next unread byte.
func (d *Decoder) Pos() int { return d.pos }

// Next decodes and returns the next field. It returns io.EOF once the body
// is exhausted. Any other error means the body is malformed; the decoder is
// not usable afterwards.
func (d *Decoder) Next() (Field, error) {
	if d.pos >= len(d.buf) {
		return Field{}, io.EOF
	}
	tag, next, err := Uvarint(d.buf, d.pos)
	if err != nil {
		return Field{}, fmt.Errorf("tag at offset %d: %w", d.pos, err)
	}
	f := Field{Number: tag >> 3, Type: Type(tag & 7)}

	switch f.Type {
	case TypeVarint:
		f.Value, next, err = Uvarint(d.buf, next)
		if err != nil {
			return Field{}, fmt.Errorf("field %d: %w", f.Number, err)
		}
	case TypeLen:
		var n uint64
		n, next, err = Uvarint(d.buf, next)
		if err != nil {
			return Field{}, fmt.Errorf("field %d length: %w", f.Number, err)
		}
		if n > uint64(len(d.buf)-next) {
			return Field{}, fmt.Errorf("field %d: %d-byte value with %d left: %w",
				f.Number, n, len(d.buf)-next, ErrTruncatedMessage)
		}
		f.Bytes = d.buf[next : next+int(n)]
		next += int(n)
	case TypeI64:
		if len(d.buf)-next < 8 {
			return Field{}, fmt.Errorf("field %d: %w", f.Number, ErrTruncatedMessage)
		}
		f.Value = binary.LittleEndian.Uint64(d.buf[next:])
		next += 8
	case TypeI32:
		if len(d.buf)-next < 4 {
			return Field{}, fmt.Errorf("field %d: %w", f.Number, ErrTruncatedMessage)
		}
		f.Value = uint64(binary.LittleEndian.Uint32(d.buf[next:]))
		next += 4
	default:
		return Field{}, fmt.Errorf("field %d: wire type %d: %w", f.Number, tag&7, ErrBadWireType)
	}
	d.pos = next
	return f, nil
}

// Package enckey converts typed keys into the order-preserving byte
// strings the tree operates on.
//
// The tree itself never interprets encoded bytes beyond equality and
// length (spec §4.1) — encoding is an external collaborator, not part
// of the tree's own contract, and lives in this standalone package so
// callers can encode once and hand []byte straight to
// [github.com/arturoga/artree/pkg/art.Tree].
//
// This is one of the few places this module reaches for the standard
// library over a third-party dependency: no codec library anywhere in
// the retrieval pack does order-preserving numeric encoding, and nothing
// about total, five-line, one-type-at-a-time byte encoding benefits from
// a larger serialization framework.
package enckey

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UnsupportedKeyTypeError reports that a key's Go type has no defined
// order-preserving byte encoding. Retrievable from a wrapped error via
// [github.com/arturoga/artree/pkg/xerrors.AsA].
type UnsupportedKeyTypeError struct {
	Value any
}

func (e *UnsupportedKeyTypeError) Error() string {
	return fmt.Sprintf("art: unsupported key type %T", e.Value)
}

// String encodes a string key as its raw bytes, unchanged.
func String(key string) []byte { return []byte(key) }

// Bytes returns key unchanged: a []byte key is already the byte
// sequence the tree operates on.
func Bytes(key []byte) []byte { return key }

// Uint8/Uint16/Uint32/Uint64 encode unsigned integers big-endian,
// width-preserving: big-endian already orders unsigned integers
// correctly byte-for-byte.

func Uint8(key uint8) []byte { return []byte{key} }

func Uint16(key uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], key)
	return buf[:]
}

func Uint32(key uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], key)
	return buf[:]
}

func Uint64(key uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], key)
	return buf[:]
}

// Int8/Int16/Int32/Int64 encode signed integers big-endian with the
// sign bit flipped, so that two's-complement negative numbers (which
// have their high bit set) sort before non-negative numbers once
// compared as unsigned bytes.

func Int8(key int8) []byte { return []byte{uint8(key) ^ 0x80} }

func Int16(key int16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(key)^0x8000)
	return buf[:]
}

func Int32(key int32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(key)^0x80000000)
	return buf[:]
}

func Int64(key int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key)^0x8000000000000000)
	return buf[:]
}

// OrderedFloat32/64 encode IEEE-754 floats as order-preserving bytes:
// positive numbers get their sign bit flipped (same trick as signed
// integers), negative numbers get every bit flipped, which reverses
// their (otherwise backwards, since larger magnitude sorts first in
// raw bit order) relative order. The result is a total order embedding
// matching float comparison for all non-NaN values.

func OrderedFloat32(key float32) []byte {
	bits := math.Float32bits(key)
	if bits&0x80000000 != 0 {
		bits = ^bits
	} else {
		bits |= 0x80000000
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], bits)
	return buf[:]
}

func OrderedFloat64(key float64) []byte {
	bits := math.Float64bits(key)
	if bits&0x8000000000000000 != 0 {
		bits = ^bits
	} else {
		bits |= 0x8000000000000000
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], bits)
	return buf[:]
}

// RawFloat32/64 encode IEEE-754 floats as their raw big-endian bits:
// equality-preserving but not order-preserving, and every bit pattern
// — including every NaN payload — is a distinct key (spec §6).

func RawFloat32(key float32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(key))
	return buf[:]
}

func RawFloat64(key float64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(key))
	return buf[:]
}

// Encode dispatches on the dynamic type of key, covering string,
// []byte and the fixed-width signed and unsigned integer types. It
// returns *UnsupportedKeyTypeError for any other type, floats
// included: ordered vs. raw float encoding must be chosen explicitly
// via [OrderedFloat64] / [RawFloat64] since Encode cannot infer which
// the caller wants.
func Encode(key any) ([]byte, error) {
	switch k := key.(type) {
	case string:
		return String(k), nil
	case []byte:
		return Bytes(k), nil
	case uint8:
		return Uint8(k), nil
	case uint16:
		return Uint16(k), nil
	case uint32:
		return Uint32(k), nil
	case uint64:
		return Uint64(k), nil
	case int8:
		return Int8(k), nil
	case int16:
		return Int16(k), nil
	case int32:
		return Int32(k), nil
	case int64:
		return Int64(k), nil
	default:
		return nil, &UnsupportedKeyTypeError{Value: key}
	}
}

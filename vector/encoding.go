package vector

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EncodeEmbedding encodes a slice of float32 values into a BLOB representation
// suitable for storage in SQLite. The encoding is a little-endian sequence of
// IEEE 754 float32 values without a length prefix; the length is derived from
// the BLOB size on decode.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding back into a
// slice of float32 values.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}

// ParseEmbedding parses a textual embedding. Accepted forms are a JSON array
// ("[1, 2.5]"), a comma-separated list ("1,2.5"), or the base64 encoding of
// an EncodeEmbedding BLOB. Every list field must hold a number; "1,,2" is an
// error.
//
// Text that is valid base64 of a whole number of float32 values is decoded as
// a BLOB, even when it also reads as a number: "1234567890123456" is three
// floats, not one. Any other bare number is a one-element list.
func ParseEmbedding(raw string) ([]float32, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("vector: embedding text is empty")
	}
	if strings.HasPrefix(s, "[") {
		var vec []float32
		if err := json.Unmarshal([]byte(s), &vec); err != nil {
			return nil, fmt.Errorf("vector: invalid JSON embedding: %w", err)
		}
		return vec, nil
	}
	if strings.Contains(s, ",") {
		return parseList(strings.Split(s, ","))
	}
	if blob, err := base64.StdEncoding.DecodeString(s); err == nil && len(blob) > 0 && len(blob)%4 == 0 {
		return DecodeEmbedding(blob)
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return []float32{float32(f)}, nil
	}
	return nil, fmt.Errorf("vector: embedding text must be a JSON/CSV float list or base64 BLOB")
}

func parseList(parts []string) ([]float32, error) {
	vec := make([]float32, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("vector: invalid embedding float at field %d: empty field", i)
		}
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, fmt.Errorf("vector: invalid embedding float %q: %w", p, err)
		}
		vec = append(vec, float32(f))
	}
	return vec, nil
}

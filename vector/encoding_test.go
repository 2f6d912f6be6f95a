package vector

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEmbedding_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	b, err := EncodeEmbedding(orig)
	require.NoError(t, err)
	require.Len(t, b, 16)
	// 1.5 little-endian
	assert.Equal(t, []byte{0x00, 0x00, 0xc0, 0x3f}, b[4:8])

	decoded, err := DecodeEmbedding(b)
	require.NoError(t, err)
	assert.Equal(t, orig, decoded)
}

func TestEncodeDecodeEmbedding_Empty(t *testing.T) {
	b, err := EncodeEmbedding(nil)
	require.NoError(t, err)
	assert.Empty(t, b)

	vec, err := DecodeEmbedding(nil)
	require.NoError(t, err)
	assert.Empty(t, vec)
}

func TestDecodeEmbedding_InvalidLength(t *testing.T) {
	_, err := DecodeEmbedding([]byte{1, 2, 3})
	assert.EqualError(t, err, "vector: invalid embedding blob length 3 (not multiple of 4)")
}

func mustDecodeBase64(t *testing.T, s string) []float32 {
	t.Helper()
	blob, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	vec, err := DecodeEmbedding(blob)
	require.NoError(t, err)
	return vec
}

func TestParseEmbedding_EmptyFieldError(t *testing.T) {
	_, err := ParseEmbedding("1,,2")
	assert.EqualError(t, err, "vector: invalid embedding float at field 1: empty field")
}

func TestParseEmbedding(t *testing.T) {
	blob, err := EncodeEmbedding([]float32{1, -2})
	require.NoError(t, err)

	testCases := []struct {
		description string
		text        string
		expect      []float32
		expectErr   bool
	}{
		{description: "json array", text: "[1, 2.5, -3]", expect: []float32{1, 2.5, -3}},
		{description: "json empty array", text: "[]", expect: []float32{}},
		{description: "csv", text: " 1, 2.5 ,-3 ", expect: []float32{1, 2.5, -3}},
		{description: "single number", text: "4", expect: []float32{4}},
		{description: "base64 blob", text: base64.StdEncoding.EncodeToString(blob), expect: []float32{1, -2}},
		{description: "empty", text: "  ", expectErr: true},
		{description: "bad json", text: "[1, x]", expectErr: true},
		{description: "bad csv", text: "1,x", expectErr: true},
		{description: "csv empty middle field", text: "1,,2", expectErr: true},
		{description: "csv only separator", text: ",", expectErr: true},
		{description: "csv trailing separator", text: "1,2,", expectErr: true},
		{description: "digit-only base64 blob", text: "1234567890123456", expect: mustDecodeBase64(t, "1234567890123456")},
		{description: "digits that are not whole floats in base64", text: "12345678", expect: []float32{12345678}},
		{description: "garbage", text: "not a vector!", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseEmbedding(tc.text)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

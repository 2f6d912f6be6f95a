package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/vecops/vector"
	sqlite "modernc.org/sqlite"
)

// RegisterVectorFunctions registers vec_mul, vec_dot, vec_cosine and vec_l2
// with the driver so they are available on new connections opened after this
// call. Existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// The driver rejects duplicate registrations; repeated calls are no-ops.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_mul", 2, vecMulImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_dot", 2, vecDotImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, vecCosineImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, vecL2Impl)
	return nil
}

// asEmbedding accepts a BLOB produced by vector.EncodeEmbedding or TEXT in
// any form vector.ParseEmbedding understands. NULL maps to a nil embedding.
func asEmbedding(fn string, arg driver.Value) ([]float32, bool, error) {
	switch v := arg.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		vec, err := vector.DecodeEmbedding(v)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", fn, err)
		}
		return vec, true, nil
	case string:
		vec, err := vector.ParseEmbedding(v)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", fn, err)
		}
		return vec, true, nil
	default:
		return nil, false, fmt.Errorf("%s: unsupported argument type %T for embedding; want BLOB or TEXT", fn, arg)
	}
}

// embeddingPair decodes both arguments; ok is false when either is NULL.
func embeddingPair(fn string, args []driver.Value) (a, b []float32, ok bool, err error) {
	if len(args) != 2 {
		return nil, nil, false, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	a, okA, err := asEmbedding(fn, args[0])
	if err != nil {
		return nil, nil, false, err
	}
	b, okB, err := asEmbedding(fn, args[1])
	if err != nil {
		return nil, nil, false, err
	}
	return a, b, okA && okB, nil
}

func vecMulImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := embeddingPair("vec_mul", args)
	if err != nil || !ok {
		return nil, err
	}
	blob, err := vector.EncodeEmbedding(vector.Multiply(a, b))
	if err != nil {
		return nil, err
	}
	if blob == nil {
		blob = []byte{}
	}
	return blob, nil
}

func vecDotImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := embeddingPair("vec_dot", args)
	if err != nil || !ok {
		return nil, err
	}
	return float64(vector.Dot(a, b)), nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := embeddingPair("vec_cosine", args)
	if err != nil || !ok {
		return nil, err
	}
	sim, err := vector.CosineSimilarity(a, b)
	if err != nil {
		return nil, err
	}
	return sim, nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := embeddingPair("vec_l2", args)
	if err != nil || !ok {
		return nil, err
	}
	d, err := vector.L2Distance(a, b)
	if err != nil {
		return nil, err
	}
	return d, nil
}

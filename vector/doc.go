// Package vector provides the numeric vector primitives used by this module:
//   - Multiply and Dot: generic element-wise product and dot product over
//     any integer, float or complex slice, truncated to the shorter input
//   - CosineSimilarity and L2Distance over float32 embeddings
//   - Embedding encoding (BLOB) and text parsing for the SQL surface
package vector

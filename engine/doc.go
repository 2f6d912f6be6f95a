// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vector SQL
// scalar functions (vec_mul, vec_dot, vec_cosine, vec_l2). Embedding
// arguments are BLOBs in the vector package encoding or textual float lists.
package engine

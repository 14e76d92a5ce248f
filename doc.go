// Package utmatrix is a small in-memory numeric container library: a
// bounds-checked dynamic vector and a compact upper-triangular matrix built on
// it, both with value semantics.
//
// What is inside?
//
//	vector/  Vector[T]: contiguous buffer with a logical start index, deep copy,
//	         equality, scalar and elementwise arithmetic, dot product
//	matrix/  Triangular[T]: n×n upper triangle stored as one Vector per row
//	         (row i holds columns i..n-1), equality, assignment, Add/Sub
//
// Both containers convert to and from gonum (mat.VecDense, mat.TriDense).
//
// Quick layout of a 3×3 Triangular:
//
//	[a00, a01, a02]
//	[  ., a11, a12]
//	[  .,   ., a22]
//
// Every public accessor returns sentinel errors instead of panicking; match
// them with errors.Is.
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix

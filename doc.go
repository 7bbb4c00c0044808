// Package gemm is a small toolkit for fixed-shape dense matrices over
// generic numeric element types — strict construction, safe access, and
// allocation-disciplined linear-algebra kernels.
//
// 🚀 What is gemm?
//
//	A value-semantic linear-algebra core that brings together:
//		• Strict construction: uniform fill, element packs, row lists — all
//		  arity-checked eagerly, so a swapped dimension fails loudly
//		• Safe access: bounds-checked At/Set plus zero-copy row slices
//		• Column views: borrowed, write-through windows with no copies
//		• Kernels: multiply, transpose, add/sub, Hadamard, scale, mat-vec
//		• Builders: zeros, uniform, identity — with shape-derived variants
//
// ✨ Why choose gemm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on the public surface
//   - Pure Go – generics over every numeric kind, no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible results
//
// Everything is organized under one subpackage:
//
//	matrix/ — the Dense container, column views, validators and kernels
//
// Quick ASCII example:
//
//	A = ┌ 1 2 ┐   Aᵀ = ┌ 1 3 ┐
//	    └ 3 4 ┘        └ 2 4 ┘
//
//	transpose turns rows into columns; multiply folds rows against columns.
//
// Dive into the matrix package docs and examples/ for full usage patterns.
//
//	go get github.com/katalvlaran/gemm/matrix
package gemm

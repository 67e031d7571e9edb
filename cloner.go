// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ddforest

// Cloner is an interface that enables deep cloning of values of type V.
// Nothing in the package calls Clone: the Copy unary operator copies
// terminal edges, Scalar payload included, by plain Go assignment.
type Cloner[V any] interface {
	Clone() V
}

// Package glmcompat stands in for a vector-math library (glm in the
// original C++ source) under --use-glm. No such library appears
// anywhere in the example pack this module was built from, so these
// are same-shape replacements, not a wrapper around a real
// dependency: field names match what the generated record types and
// parser functions already expect.
package glmcompat

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a three-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a quaternion, scalar part first.
type Quat struct {
	W, X, Y, Z float32
}

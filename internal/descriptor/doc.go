// Package descriptor defines the resolved, read-only records produced from a
// build descriptor (BuildTarget, SigningReference, DependencyCoordinate and
// the android settings around them) together with the error and risk
// taxonomy used while resolving it.
//
// Nothing in this package evaluates expressions. The resolver package fills
// these records; the render package prints them.
package descriptor

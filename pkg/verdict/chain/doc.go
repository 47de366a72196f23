// Package chain provides a minimal fluent Chain[V, I] for synchronous
// composition of Review steps.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose step-returning or pure functions
// - While: repeat a step while a predicate holds
// - Ensure: trigger side effects without changing the review
// - Strict: harden a flagged review into a rejection
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps use the package-level Then and Map functions, since
// methods cannot introduce new type parameters.
package chain

// Package fn provides small higher-order helpers used when composing step
// functions: identity, constants, left-to-right composition and currying.
package fn

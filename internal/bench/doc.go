// Package bench measures the average latency of the signing primitives.
//
// A Harness runs four phases in a fixed order: seed generation, X25519 key
// pair generation, Ed25519 key generation plus signing, and verification of
// the last signature produced by the signing phase. Each phase takes one
// clock sample before and one after its loop, so the reported figure is an
// average, not a distribution. Failures inside a loop are logged and counted
// in the phase Result; they never stop the loop.
package bench

// Package domain defines the fixed-size key and signature types shared across
// sigbench. It contains plain types only.
package domain

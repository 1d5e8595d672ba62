// Package commands defines the sigbench CLI.
//
// Commands
//
//   - (root)   Run the four-phase signing benchmark
//   - keygen   Print a fresh signing or key-exchange key pair
//   - verify   Check a detached signature given as base64 text
//
// # Implementation
//
// Flags are bound to a viper instance so every option can also come from a
// sigbench config file in --config-dir or from SIGBENCH_* environment
// variables. Benchmark and command output go to stdout; logs go to stderr.
package commands

// Package app wires sigbench's dependencies for the CLI.
//
// It loads Config through viper (flags, optional config file, SIGBENCH_*
// environment variables), builds the logrus logger and the benchmark
// harness, and exposes them via App for commands to use.
package app

// Package main provides the entry point for the wordgen command line tool.
// It generates candidate wordlists by enumerating every character combination
// over a configurable charset, or by filling wildcard positions in a pattern,
// and writes one word per line to an output file.
package main

// Package utils provides terminal input and parsing helpers for the CLI.
//
// ReadMasked reads secret-ish values (color, pattern) without echo via
// golang.org/x/term; ReadLine reads visible values. ParsePattern and
// ParseCoordinates turn the CLI's comma-separated text forms into the
// typed values the derivation core consumes.
package utils

package main

import "errors"

// ErrInputMalformed wraps an unreadable input stream or a non-numeric
// token where a numeric one was expected (spec §7's InputMalformed).
var ErrInputMalformed = errors.New("input malformed")

// ErrIOFailure wraps a writer's inability to open or write its output
// (spec §7's IOFailure).
var ErrIOFailure = errors.New("io failure")

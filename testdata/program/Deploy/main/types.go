package main

import "time"

type Global struct{ Verbose bool }

//interclap:derive context=Global
type Deploy struct {
	// Name of the release
	Name    string
	Timeout time.Duration `interactive:"long"`
	DryRun  bool          `interactive:"long"`
	Sender  Sender        `interactive:"named_arg"`
}

//interclap:derive context=Global
type Sender struct {
	// Account to sign with
	Account string
	Mode    Mode `interactive:"subcommand"`
}

// How to sign the release
//
//interclap:derive
type Mode interface{ isMode() }

// Sign with a local key
type Local struct{}

func (Local) isMode() {}

// Sign with a ledger
type Ledger struct{ Path Path }

func (*Ledger) isMode() {}

//interclap:derive
type Path struct {
	// Derivation index
	Index uint32

	// Key label
	Label string
}

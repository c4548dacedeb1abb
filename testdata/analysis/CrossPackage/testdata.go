package testdata

import "github.com/dj8yfo/interactive-clap/testdata/analysis/CrossPackage/acct"

//interclap:derive
type Transfer struct { // want Transfer:"derived record"
	Sender acct.Sender `interactive:"named_arg"`
}

//interclap:derive
type Sign struct { // want Sign:"derived record"
	Mode acct.Mode `interactive:"subcommand"`
}

//interclap:derive
type Broken struct { // want Broken:"derived record"
	Plain  acct.Plain  `interactive:"named_arg"` // want `field Plain: "named_arg" requires a type marked with //interclap:derive, got .*Plain`
	Scoped acct.Scoped `interactive:"named_arg"` // want `field Scoped: Scoped takes context .*Global but Broken takes interactiveclap.NoContext`
}

//interclap:derive
type Action interface{ isAction() } // want Action:"derived union"

// Transfer tokens
type Send struct{ Transfer Transfer }

func (Send) isAction() {}

// Sign a payload
type Remote struct{ Sender acct.Sender }

func (Remote) isAction() {}

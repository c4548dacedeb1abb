package testdata

type Global struct{ Verbose bool }

type Unmarked struct{}

//interclap:derive
type Args struct { // want Args:"derived record"
	Plain  Unmarked `interactive:"subcommand"` // want `field Plain: "subcommand" requires a type marked with //interclap:derive, got .*Unmarked`
	Wrong  Sender   `interactive:"subcommand"` // want `field Wrong: "subcommand" requires a marked union, but .*Sender is a record`
	Named  Mode     `interactive:"named_arg"`  // want `field Named: "named_arg" requires a marked record, but .*Mode is a union`
	Scoped Scoped   `interactive:"named_arg"`  // want `field Scoped: Scoped takes context .*Global but Args takes interactiveclap.NoContext`
}

//interclap:derive
type Twice struct { // want Twice:"derived record"
	First  Mode `interactive:"subcommand"`
	Second Mode `interactive:"subcommand"` // want `Twice has more than one subcommand field: First and Second`
}

//interclap:derive context=Global
type Deploy struct { // want Deploy:"derived record context=.*Subcommands.Global"
	Account string
	Mode    Mode `interactive:"subcommand"`
}

//interclap:derive
type Sender struct{} // want Sender:"derived record"

//interclap:derive context=Global
type Scoped struct{} // want Scoped:"derived record context=.*Subcommands.Global"

//interclap:derive
type Mode interface{ isMode() } // want Mode:"derived union"

type Local struct{}

func (Local) isMode() {}

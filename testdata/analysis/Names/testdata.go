package testdata

//interclap:derive
type Args struct { // want Args:"derived record"
	Command  string // want `Command is reserved in mirror CliArgs; rename it`
	HTTPPort uint16
	HttpPort uint16 // want `HTTPPort and HttpPort are both "http-port" on the command line`
}

//interclap:derive
type Members struct { // want Members:"derived record"
	Name string `interactive:"skip_interactive_input"`
	name string `interactive:"skip_interactive_input"` // want `Name and name are both Name in mirror CliMembers`
}

//interclap:derive
type Prompts struct { // want Prompts:"derived record"
	Host string
	host string // want `fields Host and host share the prompt method inputHost`
}

//interclap:derive
type Mode interface{ isMode() } // want Mode:"derived union"

type Unselected struct{} // want `Unselected is reserved in mirror CliMode; rename it`

func (Unselected) isMode() {}

type Local struct{}

func (Local) isMode() {}

type CliReport struct{}

//interclap:derive
type Report struct{} // want `Report generates CliReport, which is already declared at` Report:"derived record"

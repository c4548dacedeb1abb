package acct

type Global struct{ Verbose bool }

//interclap:derive
type Sender struct {
	// Account to sign with
	Account string
}

//interclap:derive context=Global
type Scoped struct{}

//interclap:derive
type Mode interface{ isMode() }

// Sign with a local key
type Local struct{}

func (Local) isMode() {}

type Plain struct{}

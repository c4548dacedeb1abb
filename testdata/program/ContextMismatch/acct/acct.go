package acct

type Global struct{ Verbose bool }

//interclap:derive context=Global
type Sender struct {
	// Account to sign with
	Account string
}

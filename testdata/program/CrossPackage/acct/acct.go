package acct

//interclap:derive
type Sender struct {
	// Account to sign with
	Account string

	// Nonce offset
	Offset int
}

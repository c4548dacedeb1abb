package main

import "example.com/ContextMismatch/acct"

//interclap:derive
type Transfer struct {
	Sender acct.Sender `interactive:"named_arg"`
}

func main() {}

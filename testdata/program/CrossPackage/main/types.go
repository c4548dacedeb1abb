package main

import "example.com/CrossPackage/acct"

//interclap:derive
type Transfer struct {
	// Amount to send
	Amount int64
	Sender acct.Sender `interactive:"named_arg"`
}

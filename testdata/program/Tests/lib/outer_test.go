package lib_test

import "example.com/Tests/lib"

//interclap:derive
type Outer struct {
	Args lib.Args `interactive:"named_arg"`
}

package main

//interclap:derive
type Args struct {
	Age  uint64 `interactive:"shout"`
	Mode Mode   `interactive:"named_arg"`
}

//interclap:derive
type Mode interface{ isMode() }

type Local struct{}

func (Local) isMode() {}

func main() {}

package lib

//interclap:derive
type Fixture struct {
	// Name of the fixture
	Name string
	Args Args `interactive:"named_arg"`
}

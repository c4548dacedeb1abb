package lib

//interclap:derive
type Args struct {
	// Age of the user
	Age int
}

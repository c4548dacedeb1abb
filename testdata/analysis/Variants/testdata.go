package testdata

type Global struct{ Verbose bool }

//interclap:derive
type Mode interface{ isMode() } // want Mode:"derived union"

type TooMany struct{ A, B Args } // want `variant TooMany of Mode must be a struct with zero or one field`

func (TooMany) isMode() {}

type Number int // want `variant Number of Mode must be a struct with zero or one field`

func (Number) isMode() {}

type Unmarked struct {
	Payload Plain // want `variant Unmarked: payload .*Plain must be marked with //interclap:derive`
}

func (*Unmarked) isMode() {}

type Scoped struct {
	Payload Inner // want `variant Scoped: Inner takes context .*Global but Mode takes interactiveclap.NoContext`
}

func (Scoped) isMode() {}

// Sign with a local key
type Local struct{ Args Args }

func (*Local) isMode() {}

type Plain struct{}

//interclap:derive context=Global
type Inner struct{} // want Inner:"derived record context=.*Variants.Global"

//interclap:derive
type Args struct{} // want Args:"derived record"

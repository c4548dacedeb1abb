package testdata

//interclap:derive
type Alias = struct{} // want `cannot derive for alias Alias`

//interclap:derive
type Generic[T any] struct{ V T } // want `cannot derive for generic type Generic`

//interclap:derive
type Number int // want `cannot derive for Number; need a struct or an interface type literal`

//interclap:derive
type Any interface{} // want `union Any must declare a method for its variants to implement`

//interclap:derive
type Integer interface { // want `cannot derive for constraint interface Integer`
	~int
	isInteger()
}

//interclap:derive
type Lonely interface{ isLonely() } // want `union Lonely has no variants; declare types implementing it in package testdata` Lonely:"derived union"

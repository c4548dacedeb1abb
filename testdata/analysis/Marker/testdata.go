package testdata

type Global struct{ Verbose bool }

//interclap:derive shout // want `malformed option "shout"; want key=value`
type A struct{}

//interclap:derive color=red // want `unknown option "color"`
type B struct{}

//interclap:derive context=Global context=Global // want `duplicate option "context"`
type C struct{}

//interclap:derive context=Missing // want `cannot resolve context "Missing"`
type D struct{}

//interclap:derive context=answer // want `context "answer" is not a type`
type E struct{}

const answer = 42

//interclap:derive // want `//interclap:derive applies to type declarations only`
func F() {}

//interclap:derive // want `//interclap:derive applies to type declarations only`
var V int

//interclap:derive // want `//interclap:derive must be put on a single type, not on a group`
type (
	G1 struct{}
	G2 struct{}
)

//interclap:derive context=Global
type OK struct{} // want OK:"derived record context=.*Marker.Global"

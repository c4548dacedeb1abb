package testdata

//interclap:derive
type Args struct { // want Args:"derived record"
	Age     uint64            `interactive:"shout"`                                         // want `field Age: unknown directive "shout"`
	Names   string            `interactive:"long_vec_multiple_opt"`                         // want `field Names: "long_vec_multiple_opt" requires a slice type`
	Tags    []string          `interactive:"long_vec_multiple_opt,skip_interactive_input"`  // want `field Tags: cannot combine "long_vec_multiple_opt" with skip directives`
	Token   string            `interactive:"skip_default_input_arg,skip_interactive_input"` // want `field Token: cannot combine "skip_default_input_arg" with "skip_interactive_input"`
	Quiet   bool              `interactive:"long,skip_default_input_arg"`                   // want `field Quiet: flags are never prompted`
	Mode    Mode              `interactive:"subcommand,named_arg"`                          // want `field Mode: cannot combine "named_arg" with "subcommand"`
	Sender  Sender            `interactive:"named_arg,long"`                                // want `field Sender: cannot combine "named_arg" with other directives`
	Comment string            `interactive:"skip_interactive_input,verbatim_doc_comment"`
	Origin  Point                                                                           // want `field Origin: cannot read Point from a command line argument`
	Labels  map[string]string `interactive:"skip_interactive_input"`                        // want `field Labels: cannot read map\[string\]string from a command line argument`
}

type Point struct{ X, Y int }

//interclap:derive
type Sender struct{} // want Sender:"derived record"

//interclap:derive
type Mode interface{ isMode() } // want Mode:"derived union"

type Local struct{}

func (Local) isMode() {}

//interclap:derive
type Prompts struct { // want Prompts:"derived record"
	// Login name
	Login string `interactive:"skip_default_input_arg"` // want `field Login: "skip_default_input_arg" requires method Prompts.inputLogin of type func\(interactiveclap.NoContext\) \(\*string, error\)`

	// Password
	Password string `interactive:"skip_default_input_arg"`

	Host string // want `field Host: Prompts already has method inputHost; mark the field "skip_default_input_arg" to use it`
}

func (Prompts) inputPassword(_ struct{}) (string, error) { return "", nil } // want `method inputPassword must be func\(interactiveclap.NoContext\) \(\*string, error\)`

func (Prompts) inputHost(struct{}) (*string, error) { return nil, nil }

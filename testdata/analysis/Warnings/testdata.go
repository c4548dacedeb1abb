package testdata

//interclap:derive
type Args struct { // want Args:"derived record"
	Age uint64 `interactive:"long"` // want `field Age is prompted with an empty text; document it`

	// Name of the user
	Name string `interactive:"long"`

	//
	Note string `interactive:"verbatim_doc_comment"` // want `field Note is prompted with an empty text; document it`

	City string
}

package typeinfo

import "go/types"

// textUnmarshaler is encoding.TextUnmarshaler.
var textUnmarshaler = types.NewInterfaceType([]*types.Func{
	types.NewFunc(0, nil, "UnmarshalText", types.NewSignatureType(nil, nil, nil,
		types.NewTuple(types.NewParam(0, nil, "text", types.NewSlice(types.Typ[types.Byte]))),
		types.NewTuple(types.NewParam(0, nil, "", types.Universe.Lookup("error").Type())),
		false)),
}, nil).Complete()

// Textual reports whether a value of typ can be read from a single command
// line argument. That is, *typ implements encoding.TextUnmarshaler, or typ is
// time.Duration, or typ has a string, bool, integer or float underlying type.
func Textual(typ types.Type) bool {
	if types.Implements(types.NewPointer(typ), textUnmarshaler) {
		return true
	}

	if named, ok := types.Unalias(typ).(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Duration" {
			return true
		}
	}

	basic, ok := typ.Underlying().(*types.Basic)
	if !ok || basic.Kind() == types.Uintptr {
		return false
	}
	return basic.Info()&(types.IsString|types.IsBoolean|types.IsInteger|types.IsFloat) != 0 &&
		basic.Info()&types.IsUntyped == 0
}

package typeinfo

import (
	"errors"
	"go/token"
	"go/types"
)

// ErrPromptSignature is returned by [PromptOf] for a method which does not
// look like func(C) (*T, error).
var ErrPromptSignature = errors.New("expected signature: [func(C) (*T, error)]")

// Prompt is a user-declared prompt method. Context is the type of its only
// parameter and Value is the pointee of its first result.
type Prompt struct {
	Obj     *types.Func
	Context types.Type
	Value   types.Type
}

// Pos returns the position where the method is declared.
func (p Prompt) Pos() token.Pos { return p.Obj.Pos() }

// PromptOf inspects a method with the prompt shape func(C) (*T, error).
func PromptOf(fn *types.Func) (Prompt, error) {
	sig := fn.Signature()
	params, results := sig.Params(), sig.Results()
	if sig.Variadic() || params.Len() != 1 || results.Len() != 2 {
		return Prompt{}, ErrPromptSignature
	}
	if !types.Identical(results.At(1).Type(), types.Universe.Lookup("error").Type()) {
		return Prompt{}, ErrPromptSignature
	}
	ptr, ok := types.Unalias(results.At(0).Type()).(*types.Pointer)
	if !ok {
		return Prompt{}, ErrPromptSignature
	}
	return Prompt{
		Obj:     fn,
		Context: types.Unalias(params.At(0).Type()),
		Value:   ptr.Elem(),
	}, nil
}

// Accepts reports whether the prompt takes ctx and produces a value of typ.
// A nil ctx stands for an empty struct.
func (p Prompt) Accepts(ctx, typ types.Type) bool {
	if ctx == nil {
		ctx = types.NewStruct(nil, nil)
	}
	return types.Identical(p.Context, types.Unalias(ctx)) && types.Identical(p.Value, typ)
}

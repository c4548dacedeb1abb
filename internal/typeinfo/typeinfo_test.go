package typeinfo_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj8yfo/interactive-clap/internal/typeinfo"
)

func check(t *testing.T, code string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, 0)
	require.NoError(t, err)

	pkg, err := new(types.Config).Check("example.com/p", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	return pkg
}

func lookupType(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, name)
	return obj.Type()
}

func TestIndex(t *testing.T) {
	pkg := check(t, `package p

type Args struct{ Age uint64 }
type Alias = Args
type Other struct{ Age uint64 }
`)
	args := lookupType(t, pkg, "Args")
	alias := lookupType(t, pkg, "Alias")
	other := lookupType(t, pkg, "Other")

	idx := typeinfo.NewIndex[string]()
	v, ok := idx.Put(args, "args")
	assert.True(t, ok)
	assert.Equal(t, "args", v)

	v, ok = idx.Put(alias, "alias")
	assert.False(t, ok)
	assert.Equal(t, "args", v)

	v, ok = idx.Get(alias)
	assert.True(t, ok)
	assert.Equal(t, "args", v)

	_, ok = idx.Get(other)
	assert.False(t, ok)
	assert.Equal(t, 1, idx.Len())
}

func TestNilIndex(t *testing.T) {
	var idx *typeinfo.Index[int]
	_, ok := idx.Get(types.Typ[types.Int])
	assert.False(t, ok)
	assert.Zero(t, idx.Len())
}

func TestPromptOf(t *testing.T) {
	pkg := check(t, `package p

type Global struct{ Verbose bool }

type Args struct{}

func (Args) inputName(Global) (*string, error)     { return nil, nil }
func (Args) inputEmpty(struct{}) (*[]string, error) { return nil, nil }
func (Args) inputValue(Global) (string, error)     { return "", nil }
func (Args) inputBool(Global) (*bool, bool)        { return nil, false }
func (Args) inputMany(Global, int) (*int, error)   { return nil, nil }
func (Args) inputRest(...Global) (*int, error)     { return nil, nil }
`)
	global := lookupType(t, pkg, "Global")
	args := lookupType(t, pkg, "Args").(*types.Named)

	method := func(name string) *types.Func {
		for i := range args.NumMethods() {
			if m := args.Method(i); m.Name() == name {
				return m
			}
		}
		t.Fatalf("no method %s", name)
		return nil
	}

	prompt, err := typeinfo.PromptOf(method("inputName"))
	require.NoError(t, err)
	assert.Equal(t, "inputName", prompt.Obj.Name())
	assert.True(t, prompt.Accepts(global, types.Typ[types.String]))
	assert.False(t, prompt.Accepts(nil, types.Typ[types.String]))
	assert.False(t, prompt.Accepts(global, types.Typ[types.Int]))

	prompt, err = typeinfo.PromptOf(method("inputEmpty"))
	require.NoError(t, err)
	assert.True(t, prompt.Accepts(nil, types.NewSlice(types.Typ[types.String])))
	assert.False(t, prompt.Accepts(global, types.NewSlice(types.Typ[types.String])))

	for _, name := range []string{"inputValue", "inputBool", "inputMany", "inputRest"} {
		_, err := typeinfo.PromptOf(method(name))
		assert.ErrorIs(t, err, typeinfo.ErrPromptSignature, name)
	}
}

func TestTextual(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", `package p

import (
	"net/netip"
	"time"
)

type Port uint16

type Point struct{ X, Y int }

type Level int

func (l *Level) UnmarshalText(text []byte) error { return nil }

var (
	String   string
	Bool     bool
	Int8     int8
	Float    float64
	Named    Port
	Duration time.Duration
	Addr     netip.Addr
	Custom   Level
	Struct   Point
	Map      map[string]string
	Slice    []string
	Complex  complex128
	Pointer  uintptr
	Chan     chan int
)
`, 0)
	require.NoError(t, err)
	pkg, err := (&types.Config{Importer: importer.Default()}).Check("example.com/p", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	for name, want := range map[string]bool{
		"String":   true,
		"Bool":     true,
		"Int8":     true,
		"Float":    true,
		"Named":    true,
		"Duration": true,
		"Addr":     true,
		"Custom":   true,
		"Struct":   false,
		"Map":      false,
		"Slice":    false,
		"Complex":  false,
		"Pointer":  false,
		"Chan":     false,
	} {
		assert.Equal(t, want, typeinfo.Textual(pkg.Scope().Lookup(name).Type()), name)
	}
}

//go:build !interclap

package lib_test

import (
	"slices"
	"testing"

	"example.com/Tests/lib"
)

func TestOuter(t *testing.T) {
	args := OuterToCli(Outer{Args: lib.Args{Age: 3}}).ToCliArgs()
	if want := []string{"args", "--", "3"}; !slices.Equal(args, want) {
		t.Fatalf("got %q, want %q", args, want)
	}
}

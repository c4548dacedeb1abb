//go:build !interclap

package lib

import (
	"reflect"
	"testing"

	interactiveclap "github.com/dj8yfo/interactive-clap"
)

func TestFixture(t *testing.T) {
	want := Fixture{Name: "-f", Args: Args{Age: -1}}
	cli, err := interactiveclap.TryParseFrom[CliFixture](FixtureToCli(want).ToCliArgs())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := FixtureFromCli(cli, interactiveclap.NoContext{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

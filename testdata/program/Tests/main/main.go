//go:build !interclap

package main

import (
	"fmt"
	"strings"

	"example.com/Tests/lib"
)

func main() {
	fmt.Println(strings.Join(lib.ArgsToCli(lib.Args{Age: 7}).ToCliArgs(), " "))
}

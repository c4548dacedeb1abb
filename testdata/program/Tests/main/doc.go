// Command main prints the arguments of a lib.Args.
package main

package main

//interclap:derive
type Mode interface{ isMode() }

// Prepare and submit online
type Network struct{}

func (Network) isMode() {}

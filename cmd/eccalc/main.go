package main

import "os"

func main() {
	if err := NewCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

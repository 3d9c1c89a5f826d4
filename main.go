package main

import "github.com/hance08/pesa/cmd"

func main() {
	cmd.Execute()
}

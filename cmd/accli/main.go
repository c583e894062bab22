package main

import "github.com/alonilk2/accounting-sub001/internal/interfaces/cli"

func main() {
	cli.Execute()
}

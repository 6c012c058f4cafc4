package main

import "github.com/karlseguin/listupdate/internal/cli"

func main() {
	cli.Execute()
}

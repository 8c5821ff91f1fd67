package main

import "github.com/gulftech/idparse/cmd/idparse/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/dbsmedya/pedeps/cmd/pedeps/cmd"

func main() {
	cmd.Execute()
}

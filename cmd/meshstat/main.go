package main

import "github.com/dbsmedya/meshstat/cmd/meshstat/cmd"

func main() {
	cmd.Execute()
}

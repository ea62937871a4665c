package main

import "github.com/smokeytempo/timelinegen/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/pumppro/rankengine/cmd"

func main() {
	cmd.Execute()
}

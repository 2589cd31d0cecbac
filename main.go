package main

import "github.com/coopjson/cjson/cmd"

func main() {
	cmd.Execute()
}

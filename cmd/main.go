package main

import cmd "github.com/uyouii/growth-percentiles/cmd/growthcli"

func main() {
	cmd.Execute()
}

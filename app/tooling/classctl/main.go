package main

import "github.com/AryaStark201/last-classroom/app/tooling/classctl/cmd"

func main() {
	cmd.Execute()
}

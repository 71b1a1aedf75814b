package main

import "github.com/jmg292/go-rayhunter/cmd"

func main() {
	cmd.Execute()
}

package main

import "microtask-market.com/microtask-market/cmd"

func main() {
	cmd.Execute()
}

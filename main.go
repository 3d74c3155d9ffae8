package main

import (
	"trial-shop/cmd"
	_ "trial-shop/docs"
)

func main() {
	cmd.Execute()
}

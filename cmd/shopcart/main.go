package main

import "github.com/aalvaropc/shopcart/internal/cli"

func main() {
	cli.Execute()
}

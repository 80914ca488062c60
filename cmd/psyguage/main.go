package main

import "github.com/psyguage/psyguage-server/internal/cli"

func main() {
	cli.Execute()
}

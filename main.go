package main

import (
	"context"
	"os"

	"gitline/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background(), os.Args[1:], os.Stdout, "."))
}

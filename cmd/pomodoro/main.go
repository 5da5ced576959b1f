package main

import (
	"fmt"
	"os"

	"github.com/andy/pomodoro/internal/cli"
)

func main() {
	err := cli.Execute()
	if closeErr := cli.CloseApp(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

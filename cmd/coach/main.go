package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/coach-go/internal/infrastructure/cli"
)

func main() {
	opts := cli.Options{Verbose: isVerbose()}

	if err := cli.Execute(context.Background(), opts, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrSilent) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("COACH_DEBUG"), "1") || strings.EqualFold(os.Getenv("COACH_DEBUG"), "true")
}

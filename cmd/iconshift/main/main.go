package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/iconshift/cmd/iconshift"
	"github.com/arthur-debert/iconshift/pkg/style"
)

func main() {
	rootCmd := iconshift.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

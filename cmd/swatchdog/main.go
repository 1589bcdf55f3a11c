package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
)

var rootCmd = &cobra.Command{
	Use:           "swatchdog",
	Short:         "Developer tooling for hot-deploying compiled classes into running pods",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	err := rootCmd.Execute()
	printError(err)
	os.Exit(errs.ExitCode(err))
}

func printError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrSelectionAborted) {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s nothing selected\n", yellow("Aborted:"))
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
}

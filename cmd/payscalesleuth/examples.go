package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printExamples displays usage examples for the program
func printExamples(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n📋 PayScale Sleuth Usage Examples 📋")
	fmt.Fprintln(out, "\n1. List the letter pages linked from a saved index page:")
	fmt.Fprintln(out, "   payscalesleuth index pages/index.html")

	fmt.Fprintln(out, "\n2. List only the first 20 jobs of the \"A\" page as a table, without the banner:")
	fmt.Fprintln(out, "   payscalesleuth letter pages/A.html --job-limit 20 -f table --silence")

	fmt.Fprintln(out, "\n3. Extract the salary tables of one job page as YAML:")
	fmt.Fprintln(out, "   payscalesleuth job pages/jobs/Actuary.html --self http://www.payscale.com/research/US/Job=Actuary/Salary -f yaml")

	fmt.Fprintln(out, "\n4. Parse every saved job page in a directory with 8 workers and fail if any page changed layout:")
	fmt.Fprintln(out, "   payscalesleuth batch pages/jobs -w 8 --fail-on-issues")

	fmt.Fprintln(out, "\n5. Resolve links against a mirror instead of payscale.com:")
	fmt.Fprintln(out, "   PAYSCALE_SITE_BASE_URL=https://mirror.example payscalesleuth index pages/index.html")
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printExamples(cmd)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "payscalesleuth", version)
		},
	}
}

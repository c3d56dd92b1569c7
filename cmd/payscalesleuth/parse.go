package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/output"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/pages"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/ui"
)

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index FILE",
		Short: "List the letter pages linked from a saved index page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := pages.Load(args[0])
			if err != nil {
				return err
			}
			index, issues := a.parser().ParseIndex(markup)
			a.logger.Info("parsed index", zap.String("file", args[0]), zap.Int("letters", len(index)))

			if strings.EqualFold(a.cfg.Output.Format, output.FormatTable) {
				table, err := ui.RenderIndexTable(index)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
			} else if err := output.Write(cmd.OutOrStdout(), a.cfg.Output.Format, index); err != nil {
				return err
			}
			return a.checkIssues(args[0], issues)
		},
	}
}

func newLetterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "letter FILE",
		Short: "List the jobs on a saved letter page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := pages.Load(args[0])
			if err != nil {
				return err
			}
			jobs, issues := a.parser().ParseLetter(markup)
			a.logger.Info("parsed letter page", zap.String("file", args[0]), zap.Int("jobs", len(jobs)))

			if strings.EqualFold(a.cfg.Output.Format, output.FormatTable) {
				table, err := ui.RenderJobList(jobs)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
			} else if err := output.Write(cmd.OutOrStdout(), a.cfg.Output.Format, jobs); err != nil {
				return err
			}
			return a.checkIssues(args[0], issues)
		},
	}
}

func newJobCmd(a *app) *cobra.Command {
	var name, self string

	cmd := &cobra.Command{
		Use:   "job FILE",
		Short: "Extract annual and hourly salary figures from a saved job page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := pages.Load(args[0])
			if err != nil {
				return err
			}

			stub := models.JobStub{Name: name, Self: self}
			if stub.Name == "" {
				stub.Name = pageName(args[0])
			}
			issues := a.parser().ApplyJob(&stub, markup)
			a.logger.Info("parsed job page",
				zap.String("file", args[0]),
				zap.Int("annual_fields", len(stub.Salary.Annual)),
				zap.Int("hourly_fields", len(stub.Salary.Hourly)))

			if strings.EqualFold(a.cfg.Output.Format, output.FormatTable) {
				table, err := ui.RenderSalaryTable([]models.JobStub{stub})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
			} else if err := output.Write(cmd.OutOrStdout(), a.cfg.Output.Format, stub); err != nil {
				return err
			}
			return a.checkIssues(args[0], issues)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Job name to record (defaults to the file name)")
	cmd.Flags().StringVar(&self, "self", "", "Job page URL to record")
	return cmd
}

// pageName derives a job name from a saved page path: "Actuary.html.gz" -> "Actuary"
func pageName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

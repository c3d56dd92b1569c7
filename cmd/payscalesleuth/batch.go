package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/output"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/pages"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/ui"
)

func newBatchCmd(a *app) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Extract salary figures from every saved job page in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := pages.List(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("batch start", zap.String("dir", args[0]), zap.Int("pages", len(files)), zap.Int("workers", a.cfg.Batch.Workers))

			var bar *pb.ProgressBar
			if !noProgress {
				bar = pb.New(len(files))
				bar.SetWriter(cmd.ErrOrStderr())
				bar.Start()
			}

			summaries, err := parseJobPages(cmd.Context(), a.parser(), files, a.cfg.Batch.Workers, bar)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, s := range summaries {
				if len(s.Issues) > 0 {
					failed++
					a.logger.Debug("job page issues", zap.String("file", s.File), zap.Int("issues", len(s.Issues)))
				}
			}
			a.logger.Info("batch done", zap.Int("pages", len(summaries)), zap.Int("with_issues", failed))

			if strings.EqualFold(a.cfg.Output.Format, output.FormatTable) {
				jobs := make([]models.JobStub, len(summaries))
				for i, s := range summaries {
					jobs[i] = models.JobStub{Name: pageName(s.File), Salary: s.Salary}
				}
				table, err := ui.RenderSalaryTable(jobs)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
			} else if err := output.Write(cmd.OutOrStdout(), a.cfg.Output.Format, summaries); err != nil {
				return err
			}

			if failed > 0 && a.failOnIssues {
				return eris.Errorf("%d of %d pages parsed with issues", failed, len(summaries))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&a.workers, "workers", "w", 4, "Number of pages parsed concurrently")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")
	return cmd
}

// parseJobPages parses each file as a job page with at most workers running at
// once. Results keep the order of files. A file that cannot be read aborts the batch.
func parseJobPages(ctx context.Context, p *scraper.Parser, files []string, workers int, bar *pb.ProgressBar) ([]models.ParseSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	summaries := make([]models.ParseSummary, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			markup, err := pages.Load(file)
			if err != nil {
				return err
			}
			rec, issues := p.ParseJob(markup)
			summaries[i] = models.ParseSummary{File: file, Salary: rec, Issues: issues}
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

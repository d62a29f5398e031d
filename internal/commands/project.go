package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/export"
	"github.com/runway-dev/runway/internal/model"
	"github.com/runway-dev/runway/internal/projector"
	"github.com/runway-dev/runway/internal/render"
	"github.com/runway-dev/runway/internal/scenario"
)

type projectOptions struct {
	scenario string
	start    string
	end      string
	balance  string
	format   string
	width    int
	height   int
}

func newProjectCommand(a *app) *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the balance of a scenario day by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProject(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "scenario file (default from runway.yaml)")
	cmd.Flags().StringVar(&opts.start, "start", "", "override start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "override end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.balance, "balance", "", "override starting balance")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: table, csv, json, chart (default from runway.yaml)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "chart width in columns")
	cmd.Flags().IntVar(&opts.height, "height", 0, "chart height in rows")

	return cmd
}

func (a *app) runProject(w io.Writer, opts projectOptions) error {
	path := a.scenarioPath(opts.scenario)
	doc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if err := applyOverrides(doc, opts); err != nil {
		return err
	}

	a.logger.Debug("projecting scenario",
		"path", path,
		"start", doc.StartDate.String(),
		"end", doc.EndDate.String(),
		"days", calendar.DaysBetween(doc.StartDate, doc.EndDate))

	p, err := projector.Project(doc.Input())
	if err != nil {
		var invalid *projector.InvalidScenarioError
		if errors.As(err, &invalid) {
			for _, prob := range invalid.Problems {
				a.logger.Warn("invalid scenario", "field", prob.Field, "problem", prob.Message)
			}
		}
		return err
	}

	format := opts.format
	if format == "" {
		format = a.cfg.Output.Format
	}

	switch format {
	case "csv":
		return export.WriteCSV(w, doc.StartingBalance, p)
	case "json":
		return export.WriteJSON(w, export.NewReport(doc.Title, doc.StartingBalance, p))
	case "chart":
		chartOpts := render.ChartOptions{
			Title:  chartTitle(doc),
			Width:  pick(opts.width, a.cfg.Output.ChartWidth),
			Height: pick(opts.height, a.cfg.Output.ChartHeight),
		}
		fmt.Fprint(w, render.LineChart(p, chartOpts))
		writeSummary(w, doc.StartingBalance, p)
		return nil
	case "table", "":
		fmt.Fprint(w, render.RenderTable(render.ProjectionTable(chartTitle(doc), doc.StartingBalance, p)))
		writeSummary(w, doc.StartingBalance, p)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, csv, json, or chart)", format)
	}
}

func applyOverrides(doc *scenario.Document, opts projectOptions) error {
	if opts.start != "" {
		d, err := calendar.Parse(opts.start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		doc.StartDate = d
	}
	if opts.end != "" {
		d, err := calendar.Parse(opts.end)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		doc.EndDate = d
	}
	if opts.balance != "" {
		b, err := decimal.NewFromString(opts.balance)
		if err != nil {
			return fmt.Errorf("--balance: invalid amount %q", opts.balance)
		}
		doc.StartingBalance = b
	}
	return nil
}

func writeSummary(w io.Writer, opening decimal.Decimal, p model.Projection) {
	r := export.NewReport("", opening, p)
	fmt.Fprintf(w, "\nOpening balance: %s\n", render.FormatMoney(r.Summary.Opening))
	fmt.Fprintf(w, "Final balance:   %s\n", render.FormatMoney(r.Summary.Final))
	if r.Summary.Days > 0 {
		fmt.Fprintf(w, "Lowest balance:  %s on %s\n", render.FormatMoney(r.Summary.Min), r.Summary.MinDate.Label())
	}
	if r.Summary.FirstNegative != nil {
		fmt.Fprintf(w, "Overdrawn from:  %s\n", r.Summary.FirstNegative.Label())
	}
}

func chartTitle(doc *scenario.Document) string {
	if doc.Title != "" {
		return doc.Title
	}
	return export.SeriesName
}

func pick(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
	"github.com/runway-dev/runway/internal/render"
	"github.com/runway-dev/runway/internal/scenario"
)

func newItemCommand(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "item",
		Short: "List, add, and remove scenario items",
	}
	cmd.PersistentFlags().StringVar(&path, "scenario", "", "scenario file (default from runway.yaml)")

	cmd.AddCommand(newItemListCommand(a, &path))
	cmd.AddCommand(newItemAddCommand(a, &path))
	cmd.AddCommand(newItemRemoveCommand(a, &path))

	return cmd
}

func newItemListCommand(a *app, path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [kind]",
		Short: "List items, optionally of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := scenario.Kinds
			if len(args) == 1 {
				k, err := scenario.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []scenario.Kind{k}
			}

			doc, err := scenario.Load(a.scenarioPath(*path))
			if err != nil {
				return err
			}
			for _, k := range kinds {
				writeItems(cmd.OutOrStdout(), doc, k)
			}
			return nil
		},
	}
}

type itemFlags struct {
	title     string
	amount    string
	date      string
	frequency string
	direction string
	interval  int
}

func newItemAddCommand(a *app, path *string) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add <budget|income|onetime|aggregate>",
		Short: "Append an item to a scenario",
		Long: `Append an item to a scenario.

  budget     --title --amount --date (the day of month is the due day)
  income     --title --amount --date (reference payday) [--frequency biweekly|monthly]
  onetime    --title --amount --date [--direction expense|income]
  aggregate  --title --amount (total per month) --interval (days)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := scenario.ParseKind(args[0])
			if err != nil {
				return err
			}

			file := a.scenarioPath(*path)
			doc, err := scenario.Load(file)
			if err != nil {
				return err
			}

			svc := scenario.NewService(doc)
			idx, err := addItem(svc, kind, f)
			if err != nil {
				return err
			}
			if err := scenario.Save(file, svc.Document()); err != nil {
				return err
			}

			a.logger.Debug("added item", "kind", string(kind), "index", idx, "path", file)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s item %d: %s\n", kind, idx, f.title)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "item title")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount (payment, income, or monthly total)")
	cmd.Flags().StringVar(&f.date, "date", "", "due or reference date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.frequency, "frequency", "", "income frequency: biweekly or monthly (default biweekly)")
	cmd.Flags().StringVar(&f.direction, "direction", "", "one-time direction: expense or income (default expense)")
	cmd.Flags().IntVar(&f.interval, "interval", 0, "aggregate interval in days")

	return cmd
}

func addItem(svc *scenario.Service, kind scenario.Kind, f itemFlags) (int, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return 0, fmt.Errorf("--amount: invalid amount %q", f.amount)
	}

	var date calendar.Date
	if kind != scenario.KindAggregate {
		date, err = calendar.Parse(f.date)
		if err != nil {
			return 0, fmt.Errorf("--date: %w", err)
		}
	}

	switch kind {
	case scenario.KindBudget:
		return svc.AddBudget(model.BudgetItem{Title: f.title, Payment: amount, DueDate: date}), nil
	case scenario.KindIncome:
		freq := model.Frequency(f.frequency)
		if freq != "" && !freq.Valid() {
			return 0, fmt.Errorf("--frequency: unknown frequency %q", f.frequency)
		}
		return svc.AddIncome(model.IncomeItem{Title: f.title, Amount: amount, Frequency: freq, ReferenceDate: date}), nil
	case scenario.KindOneTime:
		dir := model.Direction(f.direction)
		if dir != "" && !dir.Valid() {
			return 0, fmt.Errorf("--direction: unknown direction %q", f.direction)
		}
		return svc.AddOneTime(model.OneTimeItem{Title: f.title, Amount: amount, Direction: dir, DueDate: date}), nil
	default:
		return svc.AddAggregate(model.AggregateExpense{Title: f.title, TotalAmount: amount, IntervalDays: f.interval}), nil
	}
}

func newItemRemoveCommand(a *app, path *string) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <kind> <index>",
		Aliases: []string{"remove"},
		Short:   "Remove an item by kind and index",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := scenario.ParseKind(args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[1])
			}

			file := a.scenarioPath(*path)
			doc, err := scenario.Load(file)
			if err != nil {
				return err
			}
			svc := scenario.NewService(doc)
			if err := svc.Remove(kind, index); err != nil {
				return err
			}
			if err := scenario.Save(file, svc.Document()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s item %d\n", kind, index)
			return nil
		},
	}
}

func writeItems(w io.Writer, doc *scenario.Document, kind scenario.Kind) {
	var t render.Table
	switch kind {
	case scenario.KindBudget:
		t = render.Table{Title: "Budget items", Headers: []string{"#", "Title", "Payment", "Due day"}, Right: []bool{true, false, true, true}}
		for i, it := range doc.BudgetItems {
			t.Rows = append(t.Rows, []string{strconv.Itoa(i), it.Title, render.FormatMoney(it.Payment), strconv.Itoa(it.DueDay())})
		}
	case scenario.KindIncome:
		t = render.Table{Title: "Income items", Headers: []string{"#", "Title", "Amount", "Frequency", "Reference"}, Right: []bool{true, false, true}}
		for i, it := range doc.IncomeItems {
			t.Rows = append(t.Rows, []string{strconv.Itoa(i), it.Title, render.FormatMoney(it.Amount), string(it.Frequency), it.ReferenceDate.String()})
		}
	case scenario.KindOneTime:
		t = render.Table{Title: "One-time items", Headers: []string{"#", "Title", "Amount", "Direction", "Date"}, Right: []bool{true, false, true}}
		for i, it := range doc.OneTimeItems {
			t.Rows = append(t.Rows, []string{strconv.Itoa(i), it.Title, render.FormatMoney(it.Amount), string(it.Direction), it.DueDate.String()})
		}
	case scenario.KindAggregate:
		t = render.Table{Title: "Aggregate expenses", Headers: []string{"#", "Title", "Monthly total", "Every", "Installment"}, Right: []bool{true, false, true, true, true}}
		for i, it := range doc.AggregateExpenses {
			installment := "-"
			if it.Installments() > 0 {
				installment = render.FormatMoney(it.Installment())
			}
			t.Rows = append(t.Rows, []string{strconv.Itoa(i), it.Title, render.FormatMoney(it.TotalAmount), fmt.Sprintf("%dd", it.IntervalDays), installment})
		}
	}
	if len(t.Rows) == 0 {
		fmt.Fprintf(w, "  %s: none\n\n", t.Title)
		return
	}
	fmt.Fprintln(w, render.RenderTable(t))
}

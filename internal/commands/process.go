package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/faturai-dev/faturai/internal/config"
	"github.com/faturai-dev/faturai/internal/installment"
	"github.com/faturai-dev/faturai/internal/model"
	"github.com/faturai-dev/faturai/internal/normalizer"
	"github.com/faturai-dev/faturai/internal/proclog"
	"github.com/faturai-dev/faturai/internal/statement"
	"github.com/faturai-dev/faturai/internal/summary"
)

func newProcessCommand() *cobra.Command {
	var layout string
	var dueDate string
	var income string
	var outPath string
	var projectDir string

	cmd := &cobra.Command{
		Use:   "process <file>...",
		Short: "Normalize statements, expand installments and summarize",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runProcess(absDir, args, layout, dueDate, income, outPath)
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "", "statement layout (nubank or inter)")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "reference due date, YYYY-MM-DD (overrides config)")
	cmd.Flags().StringVar(&income, "income", "", "monthly income for the commitment summary (overrides config)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the consolidated table to this CSV file")
	cmd.Flags().StringVar(&projectDir, "dir", ".", "project directory")

	return cmd
}

func runProcess(dir string, files []string, layout, dueDateStr, incomeStr, outPath string) error {
	// Config is optional; flags fill or override it.
	var cfg *config.Config
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}

	dueDate, err := resolveDueDate(cfg, dueDateStr)
	if err != nil {
		return err
	}
	income, err := resolveIncome(cfg, incomeStr)
	if err != nil {
		return err
	}
	if layout == "" && cfg != nil {
		layout = cfg.Statement.DefaultLayout
	}
	if layout == "" {
		return fmt.Errorf("no layout given: pass --layout or set statement.default_layout")
	}

	registry := normalizer.DefaultRegistry()

	var consolidated []model.ExpandedRow
	var logEntries []proclog.Entry
	for _, file := range files {
		rows, entry, err := processFile(registry, file, layout, dueDate)
		if err != nil {
			return err
		}
		consolidated = append(consolidated, rows...)
		logEntries = append(logEntries, entry)
	}

	sort.SliceStable(consolidated, func(i, j int) bool {
		return consolidated[i].DueDate.Before(consolidated[j].DueDate)
	})

	printConsolidated(consolidated)

	monthly, cats := summary.Summarize(consolidated, income)
	printMonthly(monthly, income)
	printPivot(summary.Pivot(cats))

	if outPath != "" {
		if err := writeOut(outPath, consolidated); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(consolidated), outPath)
	}

	// The process log and the inbox only exist inside an initialized
	// project. Inbox files move to statements/processed/ once done.
	if cfg != nil {
		if err := proclog.Append(dir, logEntries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write process log: %v\n", err)
		}
		for _, file := range files {
			if !statement.InInbox(dir, file) {
				continue
			}
			if err := statement.MarkProcessed(dir, filepath.Base(file)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
	}

	return nil
}

func processFile(registry *normalizer.Registry, file, layout string, dueDate time.Time) ([]model.ExpandedRow, proclog.Entry, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, proclog.Entry{}, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	table, err := statement.ReadRawTable(filepath.Base(file), f)
	if err != nil {
		return nil, proclog.Entry{}, err
	}

	txns, err := registry.Normalize(layout, table)
	if err != nil {
		return nil, proclog.Entry{}, err
	}

	expanded := installment.ExpandAll(txns, dueDate)

	entry := proclog.Entry{
		Timestamp: time.Now().UTC(),
		File:      table.File,
		Layout:    layout,
		RowsIn:    len(table.Rows),
		RowsOut:   len(expanded),
		Skipped:   len(table.Rows) - len(txns),
	}
	return expanded, entry, nil
}

func resolveDueDate(cfg *config.Config, flag string) (time.Time, error) {
	if flag != "" {
		t, err := time.Parse("2006-01-02", flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing --due-date %q: %w", flag, err)
		}
		return t, nil
	}
	if cfg != nil && cfg.Statement.DueDate != "" {
		return cfg.ReferenceDueDate()
	}
	return time.Time{}, fmt.Errorf("no reference due date: pass --due-date or set statement.due_date")
}

func resolveIncome(cfg *config.Config, flag string) (decimal.Decimal, error) {
	if flag != "" {
		d, err := decimal.NewFromString(flag)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing --income %q: %w", flag, err)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("--income must not be negative")
		}
		return d, nil
	}
	if cfg != nil {
		return cfg.MonthlyIncome()
	}
	return decimal.Zero, nil
}

func writeOut(path string, rows []model.ExpandedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := statement.WriteExpanded(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printConsolidated(rows []model.ExpandedRow) {
	fmt.Println("Consolidated statement (installments expanded)")
	fmt.Printf("%-12s %-38s %-20s %12s %8s\n", "DUE DATE", "TITLE", "CATEGORY", "AMOUNT", "PARCELA")
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("%-12s %-38s %-20s %12s %8s\n",
			row.DueDate.Format("2006-01-02"), truncate(row.Title, 38), row.Category,
			row.Amount.StringFixed(2), label)
	}
}

func printMonthly(monthly []summary.Monthly, income decimal.Decimal) {
	fmt.Println("\nSpend by month")
	if income.IsPositive() {
		fmt.Printf("%-8s %12s %8s\n", "MONTH", "TOTAL", "% RENDA")
		for _, m := range monthly {
			fmt.Printf("%-8s %12s %7s%%\n", m.Month, m.TotalGastos.StringFixed(2), m.PercentualRenda.StringFixed(1))
		}
		return
	}
	fmt.Printf("%-8s %12s\n", "MONTH", "TOTAL")
	for _, m := range monthly {
		fmt.Printf("%-8s %12s\n", m.Month, m.TotalGastos.StringFixed(2))
	}
}

func printPivot(p summary.PivotTable) {
	if len(p.Months) == 0 {
		return
	}
	fmt.Println("\nSpend by category over months")
	fmt.Printf("%-8s", "MONTH")
	for _, c := range p.Categories {
		fmt.Printf(" %20s", c)
	}
	fmt.Println()
	for _, m := range p.Months {
		fmt.Printf("%-8s", m)
		for _, c := range p.Categories {
			fmt.Printf(" %20s", p.Cell(m, c).StringFixed(2))
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

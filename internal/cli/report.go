package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/report"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print order, inquiry, and sales aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := parseReportRange()
		if err != nil {
			return err
		}

		db, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		svc := report.NewService(db)

		summary, err := svc.Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		sales, err := svc.Sales(cmd.Context(), from, to)
		if err != nil {
			return fmt.Errorf("sales: %w", err)
		}

		renderSummary(summary)
		renderSales(sales)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "end date (YYYY-MM-DD)")
}

func parseReportRange() (from, to *time.Time, err error) {
	if reportFrom != "" {
		t, err := time.Parse("2006-01-02", reportFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from %q: %w", reportFrom, err)
		}
		from = &t
	}
	if reportTo != "" {
		t, err := time.Parse("2006-01-02", reportTo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to %q: %w", reportTo, err)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

func renderSummary(summary *report.Summary) {
	color.Cyan("Orders by status")
	table := newTable([]string{"Status", "Count"})
	for _, row := range summary.OrdersByStatus {
		table.Append([]string{row.Status, fmt.Sprintf("%d", row.Count)})
	}
	table.Render()
	fmt.Println()

	color.Cyan("Inquiries by status")
	table = newTable([]string{"Status", "Count"})
	for _, row := range summary.InquiriesByStatus {
		table.Append([]string{row.Status, fmt.Sprintf("%d", row.Count)})
	}
	table.Render()
	fmt.Println()

	color.Cyan("Top products by ordered quantity")
	table = newTable([]string{"Product", "Quantity"})
	for _, row := range summary.TopProducts {
		table.Append([]string{row.ProductName, fmt.Sprintf("%d", row.Quantity)})
	}
	table.Render()
	fmt.Println()

	color.Cyan("Catalog")
	table = newTable([]string{"Partition", "Products"})
	table.Append([]string{"active", fmt.Sprintf("%d", summary.ActiveProducts)})
	table.Append([]string{"trashed", fmt.Sprintf("%d", summary.TrashedProducts)})
	table.Render()
	fmt.Println()
}

func renderSales(sales *report.SalesReport) {
	color.Cyan("Monthly sales")
	table := newTable([]string{"Month", "Orders", "Revenue"})
	for _, row := range sales.Monthly {
		table.Append([]string{row.Month, fmt.Sprintf("%d", row.Orders), fmt.Sprintf("%.2f", row.Revenue)})
	}
	table.Render()
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

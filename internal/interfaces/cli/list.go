package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alonilk2/accounting-sub001/internal/application/documents"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
)

const flagDateLayout = "2006-01-02"

var listFlags struct {
	number     string
	customerID string
	status     string
	from       string
	to         string
	page       int
	pageSize   int
	sortBy     string
	sortDir    string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tax documents with filters and pagination",
	Example: `  accli list
  accli list --number 1001
  accli list --status PAID --from 2026-01-01 --to 2026-06-30
  accli list --page 2 --page-size 50 --sort-by total --sort-dir asc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := criteriaFromFlags()
		if err != nil {
			return err
		}

		ctrl := documents.NewListController(client, log)
		if err := ctrl.SetFilters(cmd.Context(), criteria); err != nil {
			return err
		}
		renderPage(ctrl.Page(), criteria)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFlags.number, "number", "", "substring of the document number")
	listCmd.Flags().StringVar(&listFlags.customerID, "customer", "", "customer identifier")
	listCmd.Flags().StringVar(&listFlags.status, "status", "", "lifecycle status (PAID or CANCELLED)")
	listCmd.Flags().StringVar(&listFlags.from, "from", "", "document date range start (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listFlags.to, "to", "", "document date range end (YYYY-MM-DD, inclusive)")
	listCmd.Flags().IntVar(&listFlags.page, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&listFlags.pageSize, "page-size", repository.DefaultPageSize, "rows per page (10, 25, 50 or 100)")
	listCmd.Flags().StringVar(&listFlags.sortBy, "sort-by", repository.SortByDate, "sort field: date, number or total")
	listCmd.Flags().StringVar(&listFlags.sortDir, "sort-dir", repository.SortDesc, "sort direction: asc or desc")
	rootCmd.AddCommand(listCmd)
}

func criteriaFromFlags() (repository.FilterCriteria, error) {
	criteria := repository.DefaultCriteria()
	criteria.Number = listFlags.number
	criteria.CustomerID = listFlags.customerID
	criteria.Status = listFlags.status
	criteria.Page = listFlags.page
	criteria.PageSize = listFlags.pageSize
	criteria.SortBy = listFlags.sortBy
	criteria.SortDir = listFlags.sortDir

	if listFlags.from != "" {
		t, err := time.Parse(flagDateLayout, listFlags.from)
		if err != nil {
			return criteria, fmt.Errorf("invalid --from date: %w", err)
		}
		criteria.DateFrom = &t
	}
	if listFlags.to != "" {
		t, err := time.Parse(flagDateLayout, listFlags.to)
		if err != nil {
			return criteria, fmt.Errorf("invalid --to date: %w", err)
		}
		criteria.DateTo = &t
	}
	return criteria, criteria.Validate()
}

func renderPage(page repository.PageResult, criteria repository.FilterCriteria) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tDATE\tCUSTOMER\tSTATUS\tPAYMENT\tTOTAL\tACTIONS")
	for _, d := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Number, d.Date.Format(flagDateLayout), d.CustomerName,
			d.Status, d.PaymentMethod, formatAmount(d.TotalAmount),
			rowActions(d),
		)
	}
	w.Flush()

	fmt.Printf("\nPage %d (%d rows shown, %d total)\n", criteria.Page, len(page.Items), page.TotalCount)
}

// rowActions mirrors the status gating of the table view: PAID documents
// offer cancel, everything offers view/print and delete.
func rowActions(d entity.DocumentSummary) string {
	if d.CanCancel() {
		return "print,cancel,delete"
	}
	return "print,delete"
}

var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders the exact amount to two fraction digits with grouped
// thousands, never passing the value through a float.
func formatAmount(v decimal.Decimal) string {
	fixed := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + fixed
	}
	return sign + amountPrinter.Sprint(number.Decimal(n)) + "." + frac
}

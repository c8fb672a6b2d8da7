package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"simulator/internal/entities"
	"simulator/internal/gateway/rest/admin"
)

const usage = `adminctl -- консоль администратора игрового сервера.

Использование:
  adminctl users   [-page N] [-per-page N] [-status online|offline] [-search STR]
  adminctl orders  [-page N] [-per-page N] [-status STR] [-user ID]
  adminctl reports [-page N] [-per-page N] [-status STR] [-priority STR] [-type STR]
  adminctl report-status -id ID -status STR [-response STR]
  adminctl config  [-set param=value ...]
  adminctl analytics [-days N]

Подключение берется из ADMIN_API_BASE_URL и ADMIN_API_REQUEST_TIMEOUT
(.env подхватывается автоматически), либо из флага -base-url.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("command is required")
	}

	// .env опционален: в CI и на сервере все приходит из окружения
	_ = godotenv.Load()

	command, commandArgs := args[0], args[1:]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	baseURL := flags.String("base-url", os.Getenv("ADMIN_API_BASE_URL"), "admin API base URL")

	timeout := 10 * time.Second
	if raw := os.Getenv("ADMIN_API_REQUEST_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid ADMIN_API_REQUEST_TIMEOUT=%q: %w", raw, err)
		}
		timeout = parsed
	}

	page := flags.Int("page", 1, "page number")
	perPage := flags.Int("per-page", 20, "items per page")
	status := flags.String("status", "", "status filter")
	search := flags.String("search", "", "search by username or email")
	userID := flags.Int64("user", 0, "filter by user id")
	priority := flags.String("priority", "", "priority filter")
	reportType := flags.String("type", "", "report type filter")
	reportID := flags.Int64("id", 0, "report id")
	response := flags.String("response", "", "admin response text")
	days := flags.Int("days", 7, "analytics period in days")

	var setParams paramList
	flags.Var(&setParams, "set", "config param=value, repeatable")

	if err := flags.Parse(commandArgs); err != nil {
		return err
	}

	if *baseURL == "" {
		return fmt.Errorf("admin API base URL is required (ADMIN_API_BASE_URL or -base-url)")
	}

	gateway := admin.New(*baseURL, &http.Client{Timeout: timeout})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch command {
	case "users":
		return printUsers(ctx, gateway, admin.UserFilter{
			Page: *page, PerPage: *perPage, Status: *status, Search: *search,
		})
	case "orders":
		return printOrders(ctx, gateway, admin.OrderFilter{
			Page: *page, PerPage: *perPage, Status: *status, UserID: *userID,
		})
	case "reports":
		return printReports(ctx, gateway, admin.ReportFilter{
			Page: *page, PerPage: *perPage, Status: *status, Priority: *priority, Type: *reportType,
		})
	case "report-status":
		if *reportID == 0 || *status == "" {
			return fmt.Errorf("report-status requires -id and -status")
		}
		return updateReportStatus(ctx, gateway, *reportID, *status, *response)
	case "config":
		if len(setParams.values) > 0 {
			return updateConfig(ctx, gateway, setParams.values)
		}
		return printConfig(ctx, gateway)
	case "analytics":
		return printAnalytics(ctx, gateway, *days)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// paramList собирает повторяющиеся -set param=value в одну карту.
type paramList struct {
	values map[string]float64
}

func (p *paramList) String() string {
	parts := make([]string, 0, len(p.values))
	for key, value := range p.values {
		parts = append(parts, fmt.Sprintf("%s=%g", key, value))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (p *paramList) Set(raw string) error {
	key, value, found := strings.Cut(raw, "=")
	if !found || key == "" {
		return fmt.Errorf("expected param=value, got %q", raw)
	}

	var parsed float64
	if _, err := fmt.Sscanf(value, "%g", &parsed); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if p.values == nil {
		p.values = make(map[string]float64)
	}
	p.values[key] = parsed
	return nil
}

func printUsers(ctx context.Context, gateway *admin.Gateway, filter admin.UserFilter) error {
	result, err := gateway.ListUsers(ctx, filter)
	if err != nil {
		return err
	}

	writer := newTable()
	fmt.Fprintln(writer, "ID\tUSERNAME\tEMAIL\tBALANCE\tONLINE\tACTIVE ORDER")
	for _, user := range result.Users {
		activeOrder := "-"
		if user.ActiveOrder != nil {
			activeOrder = user.ActiveOrder.ID
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%.2f\t%t\t%s\n",
			user.ID, user.Username, user.Email, user.Balance, user.Online, activeOrder)
	}
	writer.Flush()

	printPagination(result.Pagination)
	return nil
}

func printOrders(ctx context.Context, gateway *admin.Gateway, filter admin.OrderFilter) error {
	result, err := gateway.ListOrders(ctx, filter)
	if err != nil {
		return err
	}

	writer := newTable()
	fmt.Fprintln(writer, "ID\tUSER\tSTATUS\tAMOUNT\tDISTANCE KM\tCREATED")
	for _, order := range result.Orders {
		fmt.Fprintf(writer, "%s\t%d\t%s\t%.2f\t%.2f\t%s\n",
			order.ID, order.UserID, order.Status, order.Amount, order.DistanceKm, formatTime(order.CreatedAt))
	}
	writer.Flush()

	printPagination(result.Pagination)
	return nil
}

func printReports(ctx context.Context, gateway *admin.Gateway, filter admin.ReportFilter) error {
	result, err := gateway.ListReports(ctx, filter)
	if err != nil {
		return err
	}

	writer := newTable()
	fmt.Fprintln(writer, "ID\tUSER\tTYPE\tPRIORITY\tSTATUS\tMESSAGE")
	for _, report := range result.Reports {
		fmt.Fprintf(writer, "%d\t%d\t%s\t%s\t%s\t%s\n",
			report.ID, report.UserID, report.Type, report.Priority, report.Status, truncate(report.Message, 60))
	}
	writer.Flush()

	printPagination(result.Pagination)
	return nil
}

func updateReportStatus(ctx context.Context, gateway *admin.Gateway, id int64, status, response string) error {
	report, err := gateway.UpdateReportStatus(ctx, id, entities.ReportStatusType(status), response)
	if err != nil {
		return err
	}

	fmt.Printf("report %d -> %s\n", report.ID, report.Status)
	if report.AdminResponse != "" {
		fmt.Printf("response: %s\n", report.AdminResponse)
	}
	return nil
}

func printConfig(ctx context.Context, gateway *admin.Gateway) error {
	cfg, err := gateway.Config(ctx)
	if err != nil {
		return err
	}

	writer := newTable()
	for _, row := range configRows(cfg) {
		fmt.Fprintf(writer, "%s\t%g\n", row.param, row.value)
	}
	writer.Flush()
	return nil
}

func updateConfig(ctx context.Context, gateway *admin.Gateway, params map[string]float64) error {
	changes, _, err := gateway.UpdateConfig(ctx, params)
	if err != nil {
		return err
	}

	for _, change := range changes {
		fmt.Printf("%s: %g -> %g\n", change.Param, change.OldValue, change.NewValue)
	}
	return nil
}

func printAnalytics(ctx context.Context, gateway *admin.Gateway, days int) error {
	overview, err := gateway.AnalyticsOverview(ctx, days)
	if err != nil {
		return err
	}

	writer := newTable()
	fmt.Fprintf(writer, "period\t%d days\n", overview.PeriodDays)
	fmt.Fprintf(writer, "users total\t%d\n", overview.TotalUsers)
	fmt.Fprintf(writer, "users online\t%d\n", overview.OnlineUsers)
	fmt.Fprintf(writer, "users new\t%d\n", overview.NewUsersPeriod)
	fmt.Fprintf(writer, "orders total\t%d\n", overview.TotalOrders)
	fmt.Fprintf(writer, "orders completed\t%d\n", overview.CompletedOrders)
	fmt.Fprintf(writer, "orders cancelled\t%d\n", overview.CancelledOrders)
	fmt.Fprintf(writer, "revenue\t%.2f\n", overview.RevenuePeriod)
	writer.Flush()
	return nil
}

type configRow struct {
	param string
	value float64
}

func configRows(cfg entities.GameConfig) []configRow {
	return []configRow{
		{"base_payment", cfg.BasePayment},
		{"pickup_fee", cfg.PickupFee},
		{"dropoff_fee", cfg.DropoffFee},
		{"distance_rate", cfg.DistanceRate},
		{"on_time_bonus", cfg.OnTimeBonus},
		{"pickup_radius", cfg.PickupRadius},
		{"dropoff_radius", cfg.DropoffRadius},
		{"delivery_speed_kmh", cfg.DeliverySpeedKmh},
		{"delivery_base_time", float64(cfg.DeliveryBaseTime)},
		{"max_gps_accuracy", cfg.MaxGPSAccuracy},
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printPagination(p entities.Pagination) {
	fmt.Printf("page %d/%d, total %d\n", p.Page, p.Pages, p.Total)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

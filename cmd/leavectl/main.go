package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"github.com/PhoorinS/leave-system-dfd/internal/report"
	"github.com/PhoorinS/leave-system-dfd/internal/sheet"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL       string
	timeout      time.Duration
	statusFilter string
	assumeYes    bool
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "leavectl",
		Short: "Admin tooling for the leave request sheet",
		Long: `Leavectl talks directly to the spreadsheet-backed endpoint that
stores all leave requests. It can list requests, apply review decisions,
and export the dataset as an xlsx report.`,
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", os.Getenv("SHEET_API_URL"), "Apps Script endpoint URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests",
		RunE:  runList,
	}
	listCmd.Flags().StringVar(&statusFilter, "status", "", "Filter by status (pending|approved|rejected)")

	approveCmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(args[0], leave.StatusApproved)
		},
	}
	rejectCmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(args[0], leave.StatusRejected)
		},
	}
	for _, c := range []*cobra.Command{approveCmd, rejectCmd} {
		c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	}

	exportCmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export all requests to an xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	rootCmd.AddCommand(listCmd, approveCmd, rejectCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient() (*sheet.Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("--api-url or SHEET_API_URL is required")
	}
	return sheet.NewClient(apiURL, timeout), nil
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	records, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	return writeList(os.Stdout, records, statusFilter)
}

func writeList(out io.Writer, records []leave.Record, filter string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTART\tEND\tSTATUS")
	shown := 0
	for _, r := range records {
		if filter != "" && string(r.Status) != filter {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Type, r.Start, r.End, r.Status.Label())
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if shown == 0 {
		// The review-queue wording only fits the pending view.
		if filter == string(leave.StatusPending) {
			fmt.Fprintln(out, leave.PendingPlaceholder)
		} else {
			fmt.Fprintln(out, "ไม่พบรายการ")
		}
	}
	return nil
}

func runReview(id string, status leave.Status) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if !assumeYes && !confirm(os.Stdin, os.Stdout, "ยืนยันผลการพิจารณา?") {
		fmt.Println("ยกเลิกแล้ว")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.UpdateStatus(ctx, id, status); err != nil {
		var rf *sheet.RequestFailedError
		if errors.As(err, &rf) {
			msg := rf.Message
			if msg == "" {
				msg = "Unknown error"
			}
			return fmt.Errorf("เกิดข้อผิดพลาด: %s", msg)
		}
		return fmt.Errorf("เกิดข้อผิดพลาดในการอัพเดทสถานะ: %w", err)
	}

	fmt.Println("อัพเดทสถานะเรียบร้อยแล้ว")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	records, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	buf, err := report.BuildWorkbook(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Printf("exported %d records to %s\n", len(records), args[0])
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/trexxeseba/amadolibros-web/internal/api/client"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func author(l *domain.ListingDetail) string {
	return l.Attribute("Autor", "Author", "Autores")
}

func printListingsTable(w io.Writer, items []domain.ListingDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tAUTHOR\tPRICE\tSTOCK\tSTATUS\n")
	for i := range items {
		tw.writef("%s\t%s\t%s\t%s %s\t%d\t%s\n",
			items[i].ID,
			truncate(items[i].Title, 40),
			truncate(author(&items[i]), 24),
			items[i].Currency,
			items[i].Price.StringFixed(2),
			items[i].AvailableQuantity,
			items[i].Status,
		)
	}
	return tw.finish()
}

func printSearchTable(w io.Writer, results []apiclient.SearchResult) error {
	tw := newTabWriter(w)
	tw.writef("SCORE\tID\tTITLE\tAUTHOR\tPRICE\n")
	for i := range results {
		r := &results[i]
		tw.writef("%d\t%s\t%s\t%s\t%s %s\n",
			r.Score.Total,
			r.ID,
			truncate(r.Title, 40),
			truncate(author(&r.ListingDetail), 24),
			r.Currency,
			r.Price.StringFixed(2),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.ListingDetail, source string) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t%s %s\n", l.Currency, l.Price.StringFixed(2))
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("Stock:\t%d\n", l.AvailableQuantity)
	if l.Condition != "" {
		tw.writef("Condition:\t%s\n", l.Condition)
	}
	tw.writef("Shipping:\t%s (free: %v)\n", l.Shipping.Mode, l.Shipping.FreeShipping)
	tw.writef("URL:\t%s\n", l.Permalink)
	for _, k := range slices.Sorted(maps.Keys(l.Attributes)) {
		tw.writef("%s:\t%s\n", k, l.Attributes[k])
	}
	if source != "" {
		tw.writef("Source:\t%s\n", source)
	}
	return tw.finish()
}

func printReport(w io.Writer, r *domain.SyncReport) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", r.Status)
	if !r.StartedAt.IsZero() {
		tw.writef("Started:\t%s\n", r.StartedAt.Local().Format(timeLayout))
	}
	tw.writef("Duration:\t%s\n", time.Duration(r.Stats.DurationSeconds)*time.Second)
	tw.writef("Listings:\t%d of %d reported\n", r.Stats.Total, r.Stats.TotalReported)
	tw.writef("Active/Paused/Closed:\t%d/%d/%d\n", r.Stats.Active, r.Stats.Paused, r.Stats.Closed)
	if r.Stats.FailedPages+r.Stats.FailedBatches+r.Stats.SkippedItems > 0 {
		tw.writef("Failed pages:\t%d\n", r.Stats.FailedPages)
		tw.writef("Failed batches:\t%d\n", r.Stats.FailedBatches)
		tw.writef("Skipped:\t%d\n", r.Stats.SkippedItems)
	}
	if r.Error != "" {
		tw.writef("Error:\t%s\n", r.Error)
	}
	if len(r.Missing) > 0 {
		tw.writef("Missing:\t%s\n", strings.Join(r.Missing, ", "))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(r.Logs) > 0 {
		if _, err := fmt.Fprintln(w, "\nLog:"); err != nil {
			return err
		}
		for _, line := range r.Logs {
			if _, err := fmt.Fprintln(w, "  "+line); err != nil {
				return err
			}
		}
	}
	return nil
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	limit, remaining := "unlimited", "unlimited"
	if q.DailyLimit > 0 {
		limit = fmt.Sprintf("%d", q.DailyLimit)
		remaining = fmt.Sprintf("%d", q.Remaining)
	}
	tw.writef("Used today:\t%d\n", q.DailyUsed)
	tw.writef("Daily limit:\t%s\n", limit)
	tw.writef("Remaining:\t%s\n", remaining)
	tw.writef("Resets at:\t%s\n", q.ResetAt.Local().Format(timeLayout))
	tw.writef("Interval:\t%s\n", time.Duration(q.IntervalMS)*time.Millisecond)
	return tw.finish()
}

func printHealth(w io.Writer, h *apiclient.Health) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", h.Status)
	tw.writef("Store:\t%s\n", h.Store)
	if h.KV != "" {
		tw.writef("KV:\t%s\n", h.KV)
	}
	tw.writef("Credentials:\t%v\n", h.CredentialsConfigured)
	if len(h.Missing) > 0 {
		tw.writef("Missing:\t%s\n", strings.Join(h.Missing, ", "))
	}
	tw.writef("Seller:\t%v\n", h.SellerConfigured)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

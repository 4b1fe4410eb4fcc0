// ABOUTME: Activity feed and dashboard CLI commands
// ABOUTME: Read-side views over the audit trail and derived metrics
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/careops/store"
)

// ActivityCommand shows the activity feed, newest first.
func ActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	typ := fs.String("type", "", "Filter by type: lead, booking, message, system")
	limit := fs.Int("limit", store.ActivityFeedLimit, "Maximum entries")
	_ = fs.Parse(args)

	feed := st.ActivityFeed()

	var shown int
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tTYPE\tTITLE\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t----\t-----\t-----------")

	for _, item := range feed {
		if *typ != "" && item.Type != *typ {
			continue
		}
		if shown >= *limit {
			break
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			item.Timestamp.Format("Jan 02 15:04"), item.Type, item.Title, item.Description)
		shown++
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No activity yet")
	}
	return nil
}

// MetricsCommand prints the dashboard counters.
func MetricsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	_ = fs.Parse(args)

	m := st.Metrics()

	fmt.Println("Dashboard")
	fmt.Printf("  Leads:       %d\n", m.TotalLeads)
	fmt.Printf("  Bookings:    %d\n", m.TotalBookings)
	fmt.Printf("  Conversion:  %.1f%%\n", m.ConversionRate)

	return nil
}

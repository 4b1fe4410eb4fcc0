// ABOUTME: Booking CLI commands
// ABOUTME: Creating, listing, and transitioning bookings through their lifecycle
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
	"github.com/harperreed/careops/store"
)

// AddBookingCommand books a service slot for a lead. New bookings always
// start pending.
func AddBookingCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-booking", flag.ExitOnError)
	leadRef := fs.String("lead", "", "Lead ID (required)")
	serviceName := fs.String("service", "", "Service name or ID (required)")
	date := fs.String("date", "", "Date YYYY-MM-DD (required)")
	tm := fs.String("time", "", "Time HH:mm (required)")
	duration := fs.Int("duration", 0, "Duration in minutes (default: service duration)")
	staffRef := fs.String("staff", "", "Assigned staff ID")
	notes := fs.String("notes", "", "Booking notes")
	_ = fs.Parse(args)

	if *leadRef == "" || *serviceName == "" {
		return fmt.Errorf("--lead and --service are required")
	}
	if *date == "" || *tm == "" {
		return fmt.Errorf("--date and --time are required")
	}

	leadID, err := resolveLeadID(st, *leadRef)
	if err != nil {
		return err
	}

	service, err := resolveService(st, *serviceName)
	if err != nil {
		return err
	}

	if *duration == 0 {
		*duration = service.Duration
	}

	input := store.BookingInput{
		LeadID:    leadID,
		ServiceID: service.ID,
		Date:      *date,
		Time:      *tm,
		Duration:  *duration,
		Notes:     *notes,
	}

	if *staffRef != "" {
		staffID, err := uuid.Parse(*staffRef)
		if err != nil {
			return fmt.Errorf("invalid staff ID: %w", err)
		}
		input.StaffID = &staffID
	}

	booking, err := st.AddBooking(input)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	fmt.Printf("✓ Booking created: %s on %s at %s (ID: %s)\n", service.Name, booking.Date, booking.Time, booking.ID)
	fmt.Printf("  Status: %s\n", booking.Status)

	return nil
}

// ListBookingsCommand lists bookings ordered by slot.
func ListBookingsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-bookings", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	bookings := st.Bookings()

	leadNames := make(map[uuid.UUID]string)
	for _, lead := range st.Leads() {
		leadNames[lead.ID] = lead.Name
	}
	serviceNames := make(map[uuid.UUID]string)
	for _, service := range st.Services() {
		serviceNames[service.ID] = service.Name
	}

	var shown int
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTIME\tLEAD\tSERVICE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t----\t-------\t------\t--")

	for _, booking := range bookings {
		if *status != "" && booking.Status != *status {
			continue
		}

		leadName := leadNames[booking.LeadID]
		if leadName == "" {
			leadName = "-"
		}
		serviceName := serviceNames[booking.ServiceID]
		if serviceName == "" {
			serviceName = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			booking.Date, booking.Time, leadName, serviceName, booking.Status, booking.ID.String()[:8])
		shown++
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No bookings found")
		return nil
	}

	fmt.Printf("\nTotal: %d booking(s)\n", shown)
	return nil
}

// UpdateBookingStatusCommand moves a booking to a new status. Confirming
// triggers the confirmation automation chain.
func UpdateBookingStatusCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-booking-status", flag.ExitOnError)
	status := fs.String("status", "", "New status: pending, confirmed, completed, cancelled (required)")
	_ = fs.Parse(args)

	if *status == "" {
		return fmt.Errorf("--status is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("booking ID is required")
	}

	bookingID, err := resolveBookingID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	booking, err := st.UpdateBookingStatus(bookingID, *status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	fmt.Printf("✓ Booking %s is now %s\n", booking.ID.String()[:8], booking.Status)
	return nil
}

func resolveBookingID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, booking := range st.Bookings() {
		if strings.HasPrefix(booking.ID.String(), raw) {
			match = booking.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous booking ID prefix: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("invalid booking ID: %s", raw)
}

// resolveService accepts a service name (case-insensitive) or a UUID.
func resolveService(st *store.Store, raw string) (*models.Service, error) {
	services := st.Services()

	if id, err := uuid.Parse(raw); err == nil {
		for i := range services {
			if services[i].ID == id {
				return &services[i], nil
			}
		}
		return nil, fmt.Errorf("service not found: %s", raw)
	}

	for i := range services {
		if strings.EqualFold(services[i].Name, raw) {
			return &services[i], nil
		}
	}
	return nil, fmt.Errorf("service not found: %s", raw)
}

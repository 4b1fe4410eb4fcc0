// ABOUTME: Lead CLI commands
// ABOUTME: Human-friendly commands for managing the lead pipeline
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/harperreed/careops/store"
)

// AddLeadCommand adds a new lead. Automation reacts with a welcome message,
// an activity entry, and a welcome email.
func AddLeadCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	source := fs.String("source", "", "Acquisition source (default: Manual)")
	notes := fs.String("notes", "", "Notes about the lead")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	lead, err := st.AddLead(store.LeadInput{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Company: *company,
		Source:  *source,
		Notes:   *notes,
	})
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s (ID: %s)\n", lead.Name, lead.ID)
	fmt.Printf("  Email: %s\n", lead.Email)
	fmt.Printf("  Status: %s\n", lead.Status)
	if lead.Source != "" {
		fmt.Printf("  Source: %s\n", lead.Source)
	}

	return nil
}

// ListLeadsCommand lists leads, newest first.
func ListLeadsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or email")
	status := fs.String("status", "", "Filter by status")
	archived := fs.Bool("archived", false, "Include archived leads")
	_ = fs.Parse(args)

	leads := st.Leads()

	q := strings.ToLower(*query)
	var shown int

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tSTATUS\tSOURCE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t------\t------\t--")

	for _, lead := range leads {
		if lead.Archived && !*archived {
			continue
		}
		if *status != "" && lead.Status != *status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(lead.Name), q) && !strings.Contains(strings.ToLower(lead.Email), q) {
			continue
		}

		name := lead.Name
		if lead.Starred {
			name = "* " + name
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name, lead.Email, lead.Status, lead.Source, lead.ID.String()[:8])
		shown++
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No leads found")
		return nil
	}

	fmt.Printf("\nTotal: %d lead(s)\n", shown)
	return nil
}

// UpdateLeadStatusCommand moves a lead to a new pipeline status.
func UpdateLeadStatusCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-lead-status", flag.ExitOnError)
	status := fs.String("status", "", "New status: new, contacted, qualified, proposal, won, lost (required)")
	_ = fs.Parse(args)

	if *status == "" {
		return fmt.Errorf("--status is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	leadID, err := resolveLeadID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	lead, err := st.UpdateLeadStatus(leadID, *status)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	fmt.Printf("✓ Lead updated: %s is now %s\n", lead.Name, lead.Status)
	return nil
}

// StarLeadCommand toggles the starred flag on a lead.
func StarLeadCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("star-lead", flag.ExitOnError)
	unstar := fs.Bool("unstar", false, "Remove the star instead")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	leadID, err := resolveLeadID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.ToggleLeadStar(leadID, !*unstar); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	if *unstar {
		fmt.Println("✓ Star removed")
	} else {
		fmt.Println("✓ Lead starred")
	}
	return nil
}

// ArchiveLeadCommand toggles the archived flag on a lead.
func ArchiveLeadCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("archive-lead", flag.ExitOnError)
	restore := fs.Bool("restore", false, "Restore an archived lead")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	leadID, err := resolveLeadID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.ToggleLeadArchive(leadID, !*restore); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	if *restore {
		fmt.Println("✓ Lead restored")
	} else {
		fmt.Println("✓ Lead archived")
	}
	return nil
}

// resolveLeadID accepts a full UUID or an unambiguous id prefix.
func resolveLeadID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, lead := range st.Leads() {
		if strings.HasPrefix(lead.ID.String(), raw) {
			match = lead.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous lead ID prefix: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("invalid lead ID: %s", raw)
}

// ABOUTME: Staff CLI commands
// ABOUTME: Team roster management with role assignment
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

// AddStaffCommand adds a team member.
func AddStaffCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-staff", flag.ExitOnError)
	name := fs.String("name", "", "Name (required)")
	email := fs.String("email", "", "Email address (required)")
	role := fs.String("role", models.RoleStaff, "Role: owner, manager, staff")
	avatar := fs.String("avatar", "", "Avatar URL")
	_ = fs.Parse(args)

	if *name == "" || *email == "" {
		return fmt.Errorf("--name and --email are required")
	}

	user, err := st.AddStaff(*name, *email, *role, *avatar)
	if err != nil {
		return fmt.Errorf("failed to add staff: %w", err)
	}

	fmt.Printf("✓ Staff added: %s (%s, ID: %s)\n", user.Name, user.Role, user.ID)
	return nil
}

// ListStaffCommand lists the team roster.
func ListStaffCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-staff", flag.ExitOnError)
	_ = fs.Parse(args)

	staff := st.Staff()
	if len(staff) == 0 {
		fmt.Println("No staff found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tROLE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t----\t--")

	for _, user := range staff {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.Name, user.Email, user.Role, user.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d staff\n", len(staff))
	return nil
}

// UpdateStaffRoleCommand changes a team member's role.
func UpdateStaffRoleCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-staff-role", flag.ExitOnError)
	role := fs.String("role", "", "New role: owner, manager, staff (required)")
	_ = fs.Parse(args)

	if *role == "" {
		return fmt.Errorf("--role is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("staff ID is required")
	}

	staffID, err := resolveStaffID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	user, err := st.UpdateStaffRole(staffID, *role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	fmt.Printf("✓ %s is now %s\n", user.Name, user.Role)
	return nil
}

// RemoveStaffCommand removes a team member.
func RemoveStaffCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("remove-staff", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("staff ID is required")
	}

	staffID, err := resolveStaffID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.RemoveStaff(staffID); err != nil {
		return fmt.Errorf("failed to remove staff: %w", err)
	}

	fmt.Println("✓ Staff removed")
	return nil
}

func resolveStaffID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, user := range st.Staff() {
		if strings.HasPrefix(user.ID.String(), raw) {
			match = user.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous staff ID prefix: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("invalid staff ID: %s", raw)
}

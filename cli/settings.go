// ABOUTME: Settings CLI commands
// ABOUTME: Singleton business configuration, merged field by field
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/harperreed/careops/store"
)

// ShowSettingsCommand prints the current business settings.
func ShowSettingsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-settings", flag.ExitOnError)
	_ = fs.Parse(args)

	settings := st.Settings()

	fmt.Println("Business Settings")
	fmt.Printf("  Name:          %s\n", orDash(settings.BusinessName))
	fmt.Printf("  Contact email: %s\n", orDash(settings.ContactEmail))
	fmt.Printf("  Contact phone: %s\n", orDash(settings.ContactPhone))
	fmt.Printf("  Currency:      %s\n", settings.Currency)
	fmt.Printf("  Hours:         %s-%s\n", settings.Availability.Start, settings.Availability.End)
	if len(settings.Availability.Days) > 0 {
		fmt.Printf("  Days:          %s\n", strings.Join(settings.Availability.Days, ", "))
	}
	fmt.Printf("  Integrations:  email=%t sms=%t calendar=%t\n",
		settings.Integrations.EmailProvider, settings.Integrations.SMSProvider, settings.Integrations.Calendar)

	return nil
}

// UpdateSettingsCommand merges the provided flags into the settings row.
// Unset flags keep their current value.
func UpdateSettingsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-settings", flag.ExitOnError)
	name := fs.String("name", "", "Business name")
	contactEmail := fs.String("contact-email", "", "Admin notification address")
	contactPhone := fs.String("contact-phone", "", "Contact phone")
	currency := fs.String("currency", "", "Currency code")
	start := fs.String("start", "", "Opening time HH:mm")
	end := fs.String("end", "", "Closing time HH:mm")
	days := fs.String("days", "", "Comma-separated working days")
	_ = fs.Parse(args)

	settings := st.Settings()

	if *name != "" {
		settings.BusinessName = *name
	}
	if *contactEmail != "" {
		settings.ContactEmail = *contactEmail
	}
	if *contactPhone != "" {
		settings.ContactPhone = *contactPhone
	}
	if *currency != "" {
		settings.Currency = *currency
	}
	if *start != "" {
		settings.Availability.Start = *start
	}
	if *end != "" {
		settings.Availability.End = *end
	}
	if *days != "" {
		parts := strings.Split(*days, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		settings.Availability.Days = parts
	}

	if err := st.UpdateSettings(settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	fmt.Println("✓ Settings updated")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

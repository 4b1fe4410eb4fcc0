// ABOUTME: Service catalog CLI commands
// ABOUTME: Bookable offerings with duration and pricing
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/careops/models"
	"github.com/harperreed/careops/store"
)

// AddServiceCommand adds a bookable service.
func AddServiceCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-service", flag.ExitOnError)
	name := fs.String("name", "", "Service name (required)")
	description := fs.String("description", "", "Description")
	duration := fs.Int("duration", 30, "Duration in minutes")
	price := fs.Int64("price", 0, "Price in cents (0 for free)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	service, err := st.AddService(models.Service{
		Name:        *name,
		Description: *description,
		Duration:    *duration,
		Price:       *price,
	})
	if err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}

	fmt.Printf("✓ Service added: %s (%d min, ID: %s)\n", service.Name, service.Duration, service.ID)
	return nil
}

// ListServicesCommand lists the service catalog.
func ListServicesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-services", flag.ExitOnError)
	_ = fs.Parse(args)

	services := st.Services()
	if len(services) == 0 {
		fmt.Println("No services found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDURATION\tPRICE\tID")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----\t--")

	for _, service := range services {
		price := "free"
		if service.Price > 0 {
			price = fmt.Sprintf("$%.2f", float64(service.Price)/100)
		}
		_, _ = fmt.Fprintf(w, "%s\t%d min\t%s\t%s\n", service.Name, service.Duration, price, service.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d service(s)\n", len(services))
	return nil
}

// DeleteServiceCommand removes a service from the catalog.
func DeleteServiceCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-service", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("service ID or name is required")
	}

	service, err := resolveService(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.DeleteService(service.ID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	fmt.Printf("✓ Service deleted: %s\n", service.Name)
	return nil
}

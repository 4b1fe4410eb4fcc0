// ABOUTME: Inventory CLI commands
// ABOUTME: Stock management with derived status display
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

// AddItemCommand adds an inventory item.
func AddItemCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-item", flag.ExitOnError)
	name := fs.String("name", "", "Item name (required)")
	sku := fs.String("sku", "", "Stock keeping unit (required)")
	category := fs.String("category", "", "Category")
	quantity := fs.Int("quantity", 0, "Initial quantity")
	threshold := fs.Int("threshold", 5, "Low stock threshold")
	_ = fs.Parse(args)

	if *name == "" || *sku == "" {
		return fmt.Errorf("--name and --sku are required")
	}

	item, err := st.AddInventoryItem(store.InventoryInput{
		Name:      *name,
		SKU:       *sku,
		Category:  *category,
		Quantity:  *quantity,
		Threshold: *threshold,
	})
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	fmt.Printf("✓ Item created: %s (ID: %s)\n", item.Name, item.ID)
	fmt.Printf("  Quantity: %d (%s)\n", item.Quantity, item.Status)

	return nil
}

// ListInventoryCommand lists inventory items with their derived status.
func ListInventoryCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-inventory", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status: in_stock, low_stock, out_of_stock")
	_ = fs.Parse(args)

	items := st.Inventory()

	var shown int
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSKU\tQTY\tTHRESHOLD\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "----\t---\t---\t---------\t------\t--")

	for _, item := range items {
		if *status != "" && item.Status != *status {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			item.Name, item.SKU, item.Quantity, item.Threshold, item.Status, item.ID.String()[:8])
		shown++
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No inventory items found")
		return nil
	}

	fmt.Printf("\nTotal: %d item(s)\n", shown)
	return nil
}

// UpdateQuantityCommand sets an item's quantity. Dropping to or below the
// threshold triggers the low stock automation.
func UpdateQuantityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-quantity", flag.ExitOnError)
	quantity := fs.Int("quantity", -1, "New quantity (required)")
	_ = fs.Parse(args)

	if *quantity < 0 {
		return fmt.Errorf("--quantity is required and must be >= 0")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("item ID is required")
	}

	itemID, err := resolveItemID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	item, err := st.UpdateInventoryQuantity(itemID, *quantity)
	if err != nil {
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	fmt.Printf("✓ %s: quantity %d (%s)\n", item.Name, item.Quantity, item.Status)
	return nil
}

// DeleteItemCommand removes an inventory item.
func DeleteItemCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-item", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("item ID is required")
	}

	itemID, err := resolveItemID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.DeleteInventoryItem(itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	fmt.Println("✓ Item deleted")
	return nil
}

func resolveItemID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, item := range st.Inventory() {
		if strings.HasPrefix(item.ID.String(), raw) || strings.EqualFold(item.SKU, raw) {
			match = item.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous item reference: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("item not found: %s", raw)
}

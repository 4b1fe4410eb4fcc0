// ABOUTME: Form CLI commands
// ABOUTME: Form designs plus the public submission intake path
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
	"github.com/harperreed/careops/store"
)

// AddFormCommand creates a form design with a default field set.
func AddFormCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-form", flag.ExitOnError)
	title := fs.String("title", "", "Form title (required)")
	description := fs.String("description", "", "Description")
	typ := fs.String("type", models.FormContact, "Form type: contact, intake")
	published := fs.Bool("published", false, "Publish immediately")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	form, err := st.SaveForm(models.Form{
		Title:       *title,
		Description: *description,
		Type:        *typ,
		Published:   *published,
		Fields: []models.FormField{
			{ID: "name", Type: models.FieldText, Label: "Name", Required: true},
			{ID: "email", Type: models.FieldEmail, Label: "Email", Required: true},
			{ID: "phone", Type: models.FieldPhone, Label: "Phone"},
			{ID: "message", Type: models.FieldTextarea, Label: "Message"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}

	fmt.Printf("✓ Form created: %s (ID: %s)\n", form.Title, form.ID)
	return nil
}

// ListFormsCommand lists form designs.
func ListFormsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-forms", flag.ExitOnError)
	_ = fs.Parse(args)

	forms := st.Forms()
	if len(forms) == 0 {
		fmt.Println("No forms found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tTYPE\tFIELDS\tPUBLISHED\tID")
	_, _ = fmt.Fprintln(w, "-----\t----\t------\t---------\t--")

	for _, form := range forms {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n",
			form.Title, form.Type, len(form.Fields), form.Published, form.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d form(s)\n", len(forms))
	return nil
}

// SubmitFormCommand records a form submission. Submissions carrying a name
// and email enter the pipeline as a new lead, which triggers the lead
// automation.
func SubmitFormCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("submit-form", flag.ExitOnError)
	data := fs.String("data", "", `Submission data as JSON, e.g. '{"name":"Jane","email":"jane@x.com"}' (required)`)
	_ = fs.Parse(args)

	if *data == "" {
		return fmt.Errorf("--data is required")
	}
	if len(fs.Args()) < 1 {
		return fmt.Errorf("form ID is required")
	}

	formID, err := resolveFormID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(*data), &fields); err != nil {
		return fmt.Errorf("invalid submission data: %w", err)
	}

	submission, err := st.SubmitForm(formID, fields)
	if err != nil {
		return fmt.Errorf("failed to submit form: %w", err)
	}

	fmt.Printf("✓ Submission recorded (ID: %s)\n", submission.ID)
	if submission.LeadID != nil {
		fmt.Printf("  New lead: %s\n", submission.LeadID)
	}
	return nil
}

func resolveFormID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, form := range st.Forms() {
		if strings.HasPrefix(form.ID.String(), raw) || strings.EqualFold(form.Title, raw) {
			match = form.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous form reference: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("form not found: %s", raw)
}

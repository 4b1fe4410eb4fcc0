// ABOUTME: Messaging CLI commands
// ABOUTME: Thread view, sending, and read receipts for the unified inbox
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

// SendMessageCommand appends a message to a lead's thread. Staff-authored
// messages notify the business contact address; system messages do not.
func SendMessageCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("send-message", flag.ExitOnError)
	leadRef := fs.String("lead", "", "Lead ID (required)")
	content := fs.String("content", "", "Message content (required)")
	sender := fs.String("sender", models.SystemSender, "Sender ID (default: system)")
	_ = fs.Parse(args)

	if *leadRef == "" || *content == "" {
		return fmt.Errorf("--lead and --content are required")
	}

	leadID, err := resolveLeadID(st, *leadRef)
	if err != nil {
		return err
	}

	message, err := st.SendMessage(*content, leadID, *sender, nil)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	fmt.Printf("✓ Message sent (ID: %s)\n", message.ID)
	return nil
}

// InboxCommand shows messages. With --lead it shows one thread oldest first,
// otherwise all messages newest first.
func InboxCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("inbox", flag.ExitOnError)
	leadRef := fs.String("lead", "", "Show a single lead's thread")
	unread := fs.Bool("unread", false, "Only unread messages")
	_ = fs.Parse(args)

	messages := st.Messages()

	var leadID uuid.UUID
	if *leadRef != "" {
		id, err := resolveLeadID(st, *leadRef)
		if err != nil {
			return err
		}
		leadID = id
	}

	leadNames := make(map[uuid.UUID]string)
	for _, lead := range st.Leads() {
		leadNames[lead.ID] = lead.Name
	}

	var shown int
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tLEAD\tFROM\tCONTENT\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t----\t-------\t--")

	for _, message := range messages {
		if *leadRef != "" && message.LeadID != leadID {
			continue
		}
		if *unread && message.ReadAt != nil {
			continue
		}

		leadName := leadNames[message.LeadID]
		if leadName == "" {
			leadName = "-"
		}

		content := message.Content
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		content = strings.ReplaceAll(content, "\n", " ")

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			message.CreatedAt.Format("Jan 02 15:04"), leadName, message.SenderID, content, message.ID.String()[:8])
		shown++
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No messages found")
		return nil
	}

	fmt.Printf("\nTotal: %d message(s)\n", shown)
	return nil
}

// MarkReadCommand stamps a read receipt on a message. Already-read messages
// keep their original receipt.
func MarkReadCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("mark-read", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("message ID is required")
	}

	messageID, err := resolveMessageID(st, fs.Args()[0])
	if err != nil {
		return err
	}

	if err := st.MarkMessageRead(messageID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	fmt.Println("✓ Message marked read")
	return nil
}

func resolveMessageID(st *store.Store, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var match uuid.UUID
	found := 0
	for _, message := range st.Messages() {
		if strings.HasPrefix(message.ID.String(), raw) {
			match = message.ID
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	if found > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous message ID prefix: %s", raw)
	}
	return uuid.Nil, fmt.Errorf("invalid message ID: %s", raw)
}

// ABOUTME: Entry point for the careops operations console CLI
// ABOUTME: Wires database, store, email, and automation, then routes commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/harperreed/careops/automation"
	"github.com/harperreed/careops/cli"
	"github.com/harperreed/careops/db"
	"github.com/harperreed/careops/email"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/store"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/careops/careops.db)")
	seed := flag.Bool("seed", false, "Seed demo data (use with 'init')")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("careops version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "init":
		st, closer := openStore(*dbPath)
		defer closer()

		if *seed {
			if err := cli.SeedCommand(st); err != nil {
				log.Fatalf("Error: %v", err)
			}
		}
		log.Println("Database initialized successfully")

	case "ops":
		if len(commandArgs) == 0 {
			fmt.Println("Error: ops requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		st, closer := openStore(*dbPath)
		defer closer()

		opsCommand := commandArgs[0]
		opsArgs := commandArgs[1:]

		if err := runOpsCommand(st, opsCommand, opsArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		if len(commandArgs) < 2 || commandArgs[0] != "graph" {
			fmt.Println("Error: viz requires 'graph automation'")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[1] {
		case "automation":
			if err := cli.VizGraphAutomationCommand(commandArgs[2:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown graph type: %s\n\n", commandArgs[1])
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// openStore builds the full wiring: database, store, email sender, and the
// automation rule set. The returned closer releases the database handle.
func openStore(dbPath string) (*store.Store, func()) {
	if dbPath == "" {
		dbPath = db.DefaultPath()
	}

	database, err := db.OpenDatabase(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	bus := events.NewBus()
	st := store.New(db.NewRepo(database), bus)

	sender := newSender()
	st.SetNotifier(sender)

	if err := st.Hydrate(); err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	rules := automation.New(st, sender)
	rules.Install(bus)

	return st, func() { _ = database.Close() }
}

// newSender picks real SMTP delivery when configured, otherwise the logging
// sender. Either way commands keep working; delivery just degrades.
func newSender() email.Sender {
	cfg, err := email.LoadConfig()
	if err != nil {
		log.Printf("warning: %v", err)
		return email.LogSender{}
	}
	if !cfg.IsConfigured() {
		return email.LogSender{}
	}
	return email.NewSMTPSender(cfg)
}

func runOpsCommand(st *store.Store, command string, args []string) error {
	switch command {
	// Lead commands
	case "add-lead":
		return cli.AddLeadCommand(st, args)
	case "list-leads":
		return cli.ListLeadsCommand(st, args)
	case "update-lead-status":
		return cli.UpdateLeadStatusCommand(st, args)
	case "star-lead":
		return cli.StarLeadCommand(st, args)
	case "archive-lead":
		return cli.ArchiveLeadCommand(st, args)

	// Booking commands
	case "add-booking":
		return cli.AddBookingCommand(st, args)
	case "list-bookings":
		return cli.ListBookingsCommand(st, args)
	case "update-booking-status":
		return cli.UpdateBookingStatusCommand(st, args)

	// Inventory commands
	case "add-item":
		return cli.AddItemCommand(st, args)
	case "list-inventory":
		return cli.ListInventoryCommand(st, args)
	case "update-quantity":
		return cli.UpdateQuantityCommand(st, args)
	case "delete-item":
		return cli.DeleteItemCommand(st, args)

	// Messaging commands
	case "send-message":
		return cli.SendMessageCommand(st, args)
	case "inbox":
		return cli.InboxCommand(st, args)
	case "mark-read":
		return cli.MarkReadCommand(st, args)

	// Staff commands
	case "add-staff":
		return cli.AddStaffCommand(st, args)
	case "list-staff":
		return cli.ListStaffCommand(st, args)
	case "update-staff-role":
		return cli.UpdateStaffRoleCommand(st, args)
	case "remove-staff":
		return cli.RemoveStaffCommand(st, args)

	// Service commands
	case "add-service":
		return cli.AddServiceCommand(st, args)
	case "list-services":
		return cli.ListServicesCommand(st, args)
	case "delete-service":
		return cli.DeleteServiceCommand(st, args)

	// Settings commands
	case "show-settings":
		return cli.ShowSettingsCommand(st, args)
	case "update-settings":
		return cli.UpdateSettingsCommand(st, args)

	// Form commands
	case "add-form":
		return cli.AddFormCommand(st, args)
	case "list-forms":
		return cli.ListFormsCommand(st, args)
	case "submit-form":
		return cli.SubmitFormCommand(st, args)

	// Dashboard commands
	case "activity":
		return cli.ActivityCommand(st, args)
	case "metrics":
		return cli.MetricsCommand(st, args)

	default:
		fmt.Printf("Unknown ops command: %s\n\n", command)
		printUsage()
		os.Exit(1)
		return nil
	}
}

func printUsage() {
	fmt.Printf(`careops v%s - Small business operations console

USAGE:
  careops [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/careops/careops.db)
  --seed                 Seed demo data (use with 'init')

COMMANDS:
  init                   Initialize the database
  ops                    Operations commands
  viz                    Visualization commands

OPS COMMANDS:
  careops ops add-lead          Add a new lead
    --name <name>                 Lead name (required)
    --email <email>               Email address (required)
    --phone --company --source --notes

  careops ops list-leads        List leads
    --query <text>                Search by name or email
    --status <status>             Filter by status
    --archived                    Include archived leads

  careops ops update-lead-status --status <s> <id>
  careops ops star-lead [--unstar] <id>
  careops ops archive-lead [--restore] <id>

  careops ops add-booking       Book a service slot
    --lead <id> --service <name> --date <YYYY-MM-DD> --time <HH:mm>
  careops ops list-bookings [--status <s>]
  careops ops update-booking-status --status <s> <id>

  careops ops add-item          Add inventory
    --name <name> --sku <sku> [--quantity <n>] [--threshold <n>]
  careops ops list-inventory [--status <s>]
  careops ops update-quantity --quantity <n> <id|sku>
  careops ops delete-item <id|sku>

  careops ops send-message --lead <id> --content <text> [--sender <id>]
  careops ops inbox [--lead <id>] [--unread]
  careops ops mark-read <id>

  careops ops add-staff --name <name> --email <email> [--role <role>]
  careops ops list-staff
  careops ops update-staff-role --role <role> <id>
  careops ops remove-staff <id>

  careops ops add-service --name <name> [--duration <min>] [--price <cents>]
  careops ops list-services
  careops ops delete-service <id|name>

  careops ops show-settings
  careops ops update-settings [--name --contact-email --currency --start --end --days]

  careops ops add-form --title <title> [--type contact|intake] [--published]
  careops ops list-forms
  careops ops submit-form --data <json> <id|title>

  careops ops activity [--type <type>] [--limit <n>]
  careops ops metrics

VIZ COMMANDS:
  careops viz graph automation [--output <file>]
`, version)
}

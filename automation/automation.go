// ABOUTME: The fixed table of event reactions registered at startup
// ABOUTME: Reactions write back into the store and send best-effort email
package automation

import (
	"fmt"
	"log"

	"github.com/harperreed/careops/email"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
	"github.com/harperreed/careops/store"
)

// Rules binds the automation reactions to their collaborators. Create one
// per process with New, then Install it on the bus exactly once; a second
// Install on the same instance is a guarded no-op.
type Rules struct {
	store     *store.Store
	sender    email.Sender
	installed bool
	unsubs    []func()
}

func New(st *store.Store, sender email.Sender) *Rules {
	return &Rules{store: st, sender: sender}
}

// Install registers every reaction on the bus, in the order of the rule
// table. Reactions are fire-and-forget: failures inside them are logged and
// never propagate to the mutation that dispatched the event.
func (r *Rules) Install(bus *events.Bus) {
	if r.installed {
		return
	}
	r.installed = true

	r.unsubs = append(r.unsubs,
		bus.Subscribe(events.LeadCreated, r.onLeadCreated),
		bus.Subscribe(events.BookingConfirmed, r.bookingConfirmedHandler(bus)),
		bus.Subscribe(events.BookingCreated, r.onBookingCreated),
		bus.Subscribe(events.InventoryLow, r.onInventoryLow),
		bus.Subscribe(events.LeadStatusChanged, r.onLeadStatusChanged),
		bus.Subscribe(events.MessageSent, r.onMessageSent),
	)

	// INTAKE_FORM_SENT intentionally has no subscriber: the event is part of
	// the closed enumeration and the dependency graph, but the delivery flow
	// behind it has not been built yet.
}

// Uninstall removes every registration made by Install.
func (r *Rules) Uninstall() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
	r.installed = false
}

func (r *Rules) onLeadCreated(payload any) {
	lead, ok := payload.(models.Lead)
	if !ok {
		log.Printf("warning: unexpected payload for %s: %T", events.LeadCreated, payload)
		return
	}

	// Draft welcome message on the lead's thread
	if _, err := r.store.SendMessage(
		fmt.Sprintf("Hi %s, thanks for contacting us! We have received your inquiry and will be in touch shortly.", lead.Name),
		lead.ID,
		models.SystemSender,
		nil,
	); err != nil {
		log.Printf("warning: welcome message failed: %v", err)
	}

	if _, err := r.store.AddActivity(store.ActivityInput{
		Type:        models.ActivityLead,
		Title:       "New Lead Acquired",
		Description: fmt.Sprintf("%s joined via %s", lead.Name, lead.Source),
		Metadata:    map[string]interface{}{"leadId": lead.ID.String()},
	}); err != nil {
		log.Printf("warning: activity log failed: %v", err)
	}

	if _, err := r.sender.Send(
		lead.Email,
		"Welcome to CareOps!",
		fmt.Sprintf("<p>Hi %s,</p><p>Thanks for getting in touch. We'll get back to you shortly.</p>", lead.Name),
	); err != nil {
		log.Printf("warning: welcome email failed: %v", err)
	}
}

func (r *Rules) bookingConfirmedHandler(bus *events.Bus) events.Handler {
	return func(payload any) {
		booking, ok := payload.(models.Booking)
		if !ok {
			log.Printf("warning: unexpected payload for %s: %T", events.BookingConfirmed, payload)
			return
		}

		if _, err := r.store.SendMessage(
			fmt.Sprintf("Great news! Your booking for %s at %s is confirmed. Please fill out the intake form attached.", booking.Date, booking.Time),
			booking.LeadID,
			models.SystemSender,
			nil,
		); err != nil {
			log.Printf("warning: confirmation message failed: %v", err)
		}

		if _, err := r.store.AddActivity(store.ActivityInput{
			Type:        models.ActivityBooking,
			Title:       "Booking Confirmed",
			Description: fmt.Sprintf("Booking confirmed for %s", booking.Date),
			Metadata:    map[string]interface{}{"bookingId": booking.ID.String()},
		}); err != nil {
			log.Printf("warning: activity log failed: %v", err)
		}

		// Nested dispatch: runs to completion before this handler returns.
		bus.Dispatch(events.IntakeFormSent, events.IntakeForm{LeadID: booking.LeadID})
	}
}

func (r *Rules) onBookingCreated(payload any) {
	booking, ok := payload.(models.Booking)
	if !ok {
		log.Printf("warning: unexpected payload for %s: %T", events.BookingCreated, payload)
		return
	}

	if _, err := r.store.AddActivity(store.ActivityInput{
		Type:        models.ActivityBooking,
		Title:       "New Booking Request",
		Description: fmt.Sprintf("Request for %s at %s", booking.Date, booking.Time),
		Metadata:    map[string]interface{}{"bookingId": booking.ID.String()},
	}); err != nil {
		log.Printf("warning: activity log failed: %v", err)
	}
}

func (r *Rules) onInventoryLow(payload any) {
	item, ok := payload.(models.InventoryItem)
	if !ok {
		log.Printf("warning: unexpected payload for %s: %T", events.InventoryLow, payload)
		return
	}

	if _, err := r.store.AddActivity(store.ActivityInput{
		Type:        models.ActivitySystem,
		Title:       "Low Stock Alert",
		Description: fmt.Sprintf("Item %s is running low (%d remaining).", item.Name, item.Quantity),
		Metadata:    map[string]interface{}{"itemId": item.ID.String()},
	}); err != nil {
		log.Printf("warning: activity log failed: %v", err)
	}
}

func (r *Rules) onLeadStatusChanged(payload any) {
	change, ok := payload.(events.LeadStatusChange)
	if !ok {
		log.Printf("warning: unexpected payload for %s: %T", events.LeadStatusChanged, payload)
		return
	}

	if _, err := r.store.AddActivity(store.ActivityInput{
		Type:        models.ActivityLead,
		Title:       "Lead Status Updated",
		Description: fmt.Sprintf("%s moved to %s", change.Name, change.Status),
		Metadata:    map[string]interface{}{"leadId": change.ID.String()},
	}); err != nil {
		log.Printf("warning: activity log failed: %v", err)
	}
}

func (r *Rules) onMessageSent(payload any) {
	message, ok := payload.(models.Message)
	if !ok {
		log.Printf("warning: unexpected payload for %s: %T", events.MessageSent, payload)
		return
	}

	// System-authored messages never notify the admin: that would let
	// automation feed itself.
	if message.IsSystem() {
		return
	}

	contactEmail := r.store.Settings().ContactEmail
	if contactEmail == "" {
		log.Printf("warning: no contact email configured, skipping admin notification")
		return
	}

	if _, err := r.sender.Send(
		contactEmail,
		"New Message Received",
		fmt.Sprintf("<p>You have a new message from a lead.</p><p><strong>%s</strong></p>", message.Content),
	); err != nil {
		log.Printf("warning: admin notification email failed: %v", err)
	}
}

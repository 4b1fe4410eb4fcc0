// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	company TEXT,
	status TEXT NOT NULL DEFAULT 'new',
	source TEXT,
	notes TEXT,
	starred INTEGER NOT NULL DEFAULT 0,
	archived INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	last_activity_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_leads_email ON leads(email);

CREATE TABLE IF NOT EXISTS bookings (
	id TEXT PRIMARY KEY,
	lead_id TEXT NOT NULL,
	service_id TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	duration INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	staff_id TEXT,
	notes TEXT,
	created_at DATETIME NOT NULL,
	FOREIGN KEY (lead_id) REFERENCES leads(id),
	FOREIGN KEY (service_id) REFERENCES services(id)
);

CREATE INDEX IF NOT EXISTS idx_bookings_lead_id ON bookings(lead_id);
CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	lead_id TEXT NOT NULL,
	sender_id TEXT NOT NULL,
	content TEXT NOT NULL,
	attachments TEXT,
	created_at DATETIME NOT NULL,
	read_at DATETIME,
	FOREIGN KEY (lead_id) REFERENCES leads(id)
);

CREATE INDEX IF NOT EXISTS idx_messages_lead_id ON messages(lead_id);

CREATE TABLE IF NOT EXISTS inventory_items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	sku TEXT NOT NULL,
	category TEXT,
	quantity INTEGER NOT NULL,
	threshold INTEGER NOT NULL,
	status TEXT NOT NULL,
	last_updated DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inventory_sku ON inventory_items(sku);

CREATE TABLE IF NOT EXISTS activity_log (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	timestamp DATETIME NOT NULL,
	metadata TEXT
);

CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity_log(timestamp);

CREATE TABLE IF NOT EXISTS staff (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL,
	avatar_url TEXT
);

CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	duration INTEGER NOT NULL,
	price INTEGER NOT NULL DEFAULT 0,
	intake_form_id TEXT
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	business_name TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	contact_phone TEXT,
	currency TEXT NOT NULL DEFAULT 'USD',
	availability TEXT NOT NULL DEFAULT '{}',
	integrations TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS forms (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	type TEXT NOT NULL,
	fields TEXT NOT NULL,
	published INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS form_submissions (
	id TEXT PRIMARY KEY,
	form_id TEXT NOT NULL,
	lead_id TEXT,
	data TEXT NOT NULL,
	submitted_at DATETIME NOT NULL,
	FOREIGN KEY (form_id) REFERENCES forms(id)
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

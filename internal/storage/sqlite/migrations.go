package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// Listing queries order by rowid, which reflects insertion order.
// owner_id deliberately has no foreign key: deleting a member leaves their
// items in place, matching the in-memory backend.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    phone TEXT NOT NULL UNIQUE,
    credits INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    cost INTEGER NOT NULL,
    owner_id TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contracts (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    item_cost INTEGER NOT NULL,
    borrower_id TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    active INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items(owner_id);
CREATE INDEX IF NOT EXISTS idx_contracts_item_id ON contracts(item_id);
CREATE INDEX IF NOT EXISTS idx_contracts_borrower_id ON contracts(borrower_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

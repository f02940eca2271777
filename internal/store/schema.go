package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS items (
    position         INTEGER PRIMARY KEY,
    name             TEXT NOT NULL,
    amount           REAL NOT NULL,
    cycle            TEXT NOT NULL,
    due_date_type    TEXT NOT NULL,
    day_of_month     INTEGER,
    weekday          TEXT,
    due_date         TEXT,
    imported_at      TEXT NOT NULL
);
`

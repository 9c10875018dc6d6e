package backend

// schema is applied on every Postgres start. Statements must stay idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	price       NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	type        TEXT NOT NULL DEFAULT 'Physical',
	sku         TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS orders (
	id            TEXT PRIMARY KEY,
	order_number  TEXT NOT NULL UNIQUE,
	customer_name TEXT NOT NULL,
	items         JSONB NOT NULL DEFAULT '[]',
	total         NUMERIC(12,2) NOT NULL DEFAULT 0,
	status        TEXT NOT NULL DEFAULT 'Pending',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC);

CREATE TABLE IF NOT EXISTS customers (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	avatar          TEXT NOT NULL DEFAULT '',
	total_spent     NUMERIC(12,2) NOT NULL DEFAULT 0,
	last_order_date DATE,
	tags            TEXT[] NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS settings (
	id            SERIAL PRIMARY KEY,
	store_name    TEXT NOT NULL,
	email         TEXT NOT NULL DEFAULT '',
	currency      TEXT NOT NULL DEFAULT 'INR',
	tax_rate      TEXT NOT NULL DEFAULT '0',
	notifications BOOLEAN NOT NULL DEFAULT TRUE
);
`

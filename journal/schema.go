package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	instrument TEXT NOT NULL,
	direction TEXT NOT NULL,
	contracts INTEGER NOT NULL,
	entry TEXT NOT NULL,
	exit TEXT NOT NULL,
	commissions REAL NOT NULL,
	fees REAL NOT NULL,
	pnl REAL NOT NULL,
	setup TEXT NOT NULL,
	notes TEXT NOT NULL,
	image_path TEXT NOT NULL DEFAULT '',
	timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`

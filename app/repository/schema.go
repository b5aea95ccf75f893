package repository

import "fmt"

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS payment_trackings (
    id           CHAR(36)     NOT NULL PRIMARY KEY,
    payment_id   VARCHAR(128) NOT NULL,
    user_id      VARCHAR(128) NULL,
    last_status  VARCHAR(32)  NOT NULL DEFAULT '',
    outcome      VARCHAR(32)  NOT NULL,
    polls        INT          NOT NULL DEFAULT 0,
    started_at   DATETIME(6)  NOT NULL,
    finished_at  DATETIME(6)  NULL,
    created_at   DATETIME(6)  NOT NULL,
    updated_at   DATETIME(6)  NOT NULL,
    UNIQUE KEY uq_payment_trackings_payment (payment_id),
    KEY idx_payment_trackings_outcome_updated (outcome, updated_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS payment_trackings (
    id           TEXT     NOT NULL PRIMARY KEY,
    payment_id   TEXT     NOT NULL UNIQUE,
    user_id      TEXT,
    last_status  TEXT     NOT NULL DEFAULT '',
    outcome      TEXT     NOT NULL,
    polls        INTEGER  NOT NULL DEFAULT 0,
    started_at   DATETIME NOT NULL,
    finished_at  DATETIME,
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payment_trackings_outcome_updated ON payment_trackings(outcome, updated_at);
`

// Schema returns the DDL statements that create the tables for driver.
func Schema(driver string) ([]string, error) {
	switch driver {
	case "mysql":
		return []string{mysqlSchema}, nil
	case "sqlite":
		return []string{sqliteSchema}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

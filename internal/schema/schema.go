// Package schema provisions the four tables the data-access layer expects.
// Provisioning is idempotent and never alters existing tables.
package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
)

// Statements creates users, events, attendances and tasks in dependency order.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		username VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		admin BOOLEAN NOT NULL DEFAULT FALSE,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		created_by INTEGER NOT NULL REFERENCES users(id),
		location VARCHAR(100),
		max_attendees INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		event_id INTEGER NOT NULL REFERENCES events(id),
		status VARCHAR(100) NOT NULL,
		notes VARCHAR(255)
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		assigned_to INTEGER REFERENCES users(id),
		created_by INTEGER NOT NULL REFERENCES users(id),
		due_date TIMESTAMPTZ,
		event_id INTEGER REFERENCES events(id),
		completed BOOLEAN NOT NULL DEFAULT FALSE
	);`,
}

// Provision runs every statement against db.
func Provision(ctx context.Context, db sqlx.ExecerContext) error {
	for i, stmt := range Statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema provisioning failed", "statement", i, "error", err)
			return fmt.Errorf("provision schema: %w", err)
		}
	}
	logger.Log.Infow("schema provisioned", "tables", len(Statements))
	return nil
}

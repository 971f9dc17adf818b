package db

import "database/sql"

// DBProvider is an interface for database clients that provide access to a
// sql.DB handle. Replication targets accept either PostgresClient or
// SupabaseClient through it.
type DBProvider interface {
	DB() *sql.DB
}

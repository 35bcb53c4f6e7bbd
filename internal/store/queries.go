package store

// SQL for the postgres backend. All SQL lives here.

const (
	queryGetEntry = `
		SELECT value
		FROM kv_entries
		WHERE key = $1
		  AND (expires_at IS NULL OR expires_at > now())`

	queryUpsertEntry = `
		INSERT INTO kv_entries (key, value, expires_at, updated_at)
		VALUES (@key, @value, @expires_at, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()`

	queryDeleteEntry = `DELETE FROM kv_entries WHERE key = $1`

	queryPurgeExpired = `
		DELETE FROM kv_entries
		WHERE expires_at IS NOT NULL AND expires_at <= now()`
)

// Migration bookkeeping.
const (
	queryCreateMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	queryMigrationApplied = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`

	queryRecordMigration = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

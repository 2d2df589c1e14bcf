package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// summaryTable is the name of the table for summary caching.
const summaryTable = "summary_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetAssessmentDBFilePath returns the path to the SQLite DB file for assessment storage.
func GetAssessmentDBFilePath() string {
	return contract.GetAssessmentDBFilePath()
}

// InitCaching initializes the global cache manager with separate summary and
// assessment stores. Either backend can be empty to skip that store.
func InitCaching(cacheBackend schema.DatabaseBackend, cacheConnStr string, assessmentBackend schema.DatabaseBackend, assessmentConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		var summaryStore contract.CacheStore
		if cacheBackend != "" {
			summaryStore, err = NewCacheStore(summaryTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize summary caching: %w", err)
				return
			}
		}

		var assessmentStore contract.AssessmentStore
		if assessmentBackend != "" {
			assessmentStore, err = NewAssessmentStore(assessmentBackend, assessmentConnStr)
			if err != nil {
				if summaryStore != nil {
					_ = summaryStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize assessment store: %w", err)
				return
			}
		}

		Manager.summary = summaryStore
		Manager.assessment = assessmentStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.summary != nil {
			_ = Manager.summary.Close()
		}
		if Manager.assessment != nil {
			_ = Manager.assessment.Close()
		}
	})
}

// ClearCache clears the summary cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return removeSQLiteFile(dbFilePath)

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, summaryTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, summaryTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// ClearAssessment clears the assessment history for the specified backend.
func ClearAssessment(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return removeSQLiteFile(dbFilePath)

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		driverName := "mysql"
		if backend == schema.PostgreSQLBackend {
			driverName = "pgx"
		}
		for _, table := range []string{assessmentRunsTable, mpaScoresTable} {
			if err := clearSQLTable(driverName, connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported assessment backend for clearing: %s", backend)
	}
}

func removeSQLiteFile(dbFilePath string) error {
	if dbFilePath == "" {
		return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
	}
	// Remove the file; ignore if it doesn't exist
	if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
	}
	return nil
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}

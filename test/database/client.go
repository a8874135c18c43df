// Package database creates throwaway database clients for integration tests.
package database

import (
	"testing"

	"github.com/recollect-ai/recollect/pkg/database"
	"github.com/recollect-ai/recollect/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer with PostgreSQL.
// Schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}

package integration

import (
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/migration"
	"github.com/rbcastillo/collegeinfo-ms-go/test/testutil"
)

func TestMigrateUpIntegration(t *testing.T) {
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer testDB.Cleanup()

	db := testDB.DB

	// Run migrations
	if err := migration.MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	// Give some time for migration to finalize
	time.Sleep(100 * time.Millisecond)

	// Verify both tables exist and are empty
	for _, table := range []string{"media_mappings", "fee_schedules"} {
		recs := 0
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&recs); err != nil {
			t.Fatalf("failed to query migrated table %q: %v", table, err)
		}
		if recs != 0 {
			t.Errorf("expected 0 rows in %q after migration, got %d", table, recs)
		}
	}

	// The placement key must be unique per (department, slot)
	if _, err := db.Exec(`INSERT INTO media_mappings (id, department, slot, object_key, url) VALUES (UNHEX(REPLACE(UUID(),'-','')), 'bsit', 'home-banner', 'k1', 'u1')`); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO media_mappings (id, department, slot, object_key, url) VALUES (UNHEX(REPLACE(UUID(),'-','')), 'bsit', 'home-banner', 'k2', 'u2')`); err == nil {
		t.Error("expected duplicate placement insert to fail")
	}
}

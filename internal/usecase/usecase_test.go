package usecase

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newTestDB returns a gorm handle backed by the dummy dialector. It is good
// enough for read paths and for write paths that bail out before commit;
// anything that must reach a real database lives in the integration tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open dummy database: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

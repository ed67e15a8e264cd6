// database_utils holds the shared test-database helpers. Nothing here should
// contain business logic.
package utils

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/bit-festival/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestDBPrefix         = "testonlydb_"
	TestDBNameCharLength = 8
)

func isTempDB(dbName string) bool {
	return strings.HasPrefix(dbName, TestDBPrefix)
}

func randomTestDBName() string {
	return TestDBPrefix + RandomAlphabetString(TestDBNameCharLength)
}

func RandomAlphabetString(length int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// CreateTempDB creates a throwaway Postgres database for one test case,
// migrates the models into it, and drops it on cleanup. Tests calling it are
// skipped when TEST_DB_HOST is unset so the suite runs without database
// infrastructure.
func CreateTempDB(t *testing.T) *gorm.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database-backed test")
	}

	admin, err := getTestConnection(host, "postgres")
	if err != nil {
		t.Fatal("cannot connect to admin DB: ", err)
	}

	dbName := randomTestDBName()
	if err := admin.Exec("CREATE DATABASE " + dbName).Error; err != nil {
		t.Fatal("fail to create temp DB with name: ", dbName)
	}

	newDB, err := getTestConnection(host, dbName)
	if err != nil {
		t.Fatal("fail to connect to newly created DB: ", dbName)
	}

	err = newDB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Activity{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatal("fail to migrate temp DB: ", err)
	}

	t.Cleanup(func() {
		dropTempDB(admin, newDB, dbName)

		// Proactively close the connections instead of deferring to GC, so
		// repeated tests don't exhaust the server's connection limit.
		if conn, err := admin.DB(); err == nil {
			conn.Close()
		}
	})

	return newDB
}

func dropTempDB(admin, curDB *gorm.DB, dbName string) {
	if !isTempDB(dbName) {
		panic("cannot delete a non-testing DB")
	}

	// The connection into the temp DB must be closed before it can be dropped.
	if conn, err := curDB.DB(); err == nil {
		conn.Close()
	}

	admin.Exec("DROP DATABASE IF EXISTS " + dbName)
}

func getTestConnection(host, dbName string) (*gorm.DB, error) {
	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "postgres"
	}
	password := os.Getenv("TEST_DB_PASSWORD")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbName, port)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

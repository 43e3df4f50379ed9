package main

import (
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db     *gorm.DB
	dbErr  error
	dbOnce sync.Once
)

var placeHolder uuid.UUID

func init() {
	placeholder, err := uuid.FromString("f9a87c7e3f4f11eb99b58c8590001d9d")
	if err != nil {
		log.WithError(err).Fatal("failed to parse placeholder uuid")
	}
	placeHolder = placeholder
}

func connStr() string {
	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "test"
	}
	return strings.Join([]string{"dbname", dbname}, "=")
}

// database connects on first use so the console and the route tests run
// without postgres.
func database() (*gorm.DB, error) {
	dbOnce.Do(func() {
		db, dbErr = openDB(connStr())
	})
	return db, dbErr
}

func openDB(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", dsn).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := conn.AutoMigrate(&Game{}); err != nil {
		return nil, err
	}
	log.WithField("connStr", dsn).Info("database ready")
	return conn, nil
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
	panic(err)
}

// Close closes the pool if it was ever opened.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package mock provides in-process test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite database migrated to the full schema.
type Db struct {
	conn *gorm.DB
}

// NewDb opens the shared in-memory database. The connection is created once
// per process; call Reset between scenarios.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := conn.AutoMigrate(models()...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{conn: conn}
}

// Conn returns the gorm connection.
func (d *Db) Conn() *gorm.DB {
	return d.conn
}

// Reset removes every row while keeping the schema.
func (d *Db) Reset() error {
	for _, m := range models() {
		err := d.conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for %T: %w", m, err)
		}
	}
	return nil
}

func models() []any {
	return []any{
		&model.WalletModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.FixedIncomeModel{},
		&model.InstallmentModel{},
		&model.CreditCardModel{},
		&model.EmailQueueModel{},
	}
}

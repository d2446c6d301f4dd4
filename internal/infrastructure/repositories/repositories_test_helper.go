package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createWalletTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		wallet_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		store_id INTEGER NOT NULL,
		wallet_status TEXT NOT NULL DEFAULT 'active',
		wallet_name TEXT NOT NULL,
		current_amount NUMERIC NOT NULL DEFAULT 0,
		alert_amount NUMERIC NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE wallet_adjustments_history (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		wallet_id INTEGER NOT NULL,
		wallet_name TEXT,
		client_id INTEGER NOT NULL,
		client_name TEXT,
		store_id INTEGER NOT NULL,
		store_name TEXT,
		entity_id INTEGER NOT NULL,
		entity_type TEXT NOT NULL,
		entity_name TEXT,
		adjustment_amount NUMERIC NOT NULL,
		previous_amount NUMERIC NOT NULL,
		total_amount NUMERIC NOT NULL,
		created_at DATETIME
	);`)
}

func createCardProxyTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE client_card_proxies (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		proxy TEXT NOT NULL UNIQUE,
		proxy_status TEXT NOT NULL DEFAULT 'available',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE customer_card_proxies (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		proxy TEXT NOT NULL,
		proxy_status TEXT NOT NULL DEFAULT 'active',
		person_id TEXT,
		last4 TEXT,
		expiry TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		txn_id TEXT NOT NULL,
		customer_id INTEGER NOT NULL,
		proxy TEXT NOT NULL,
		entity_id INTEGER NOT NULL,
		entity_type TEXT NOT NULL,
		event_type TEXT NOT NULL,
		currency_code TEXT NOT NULL,
		txn_amount NUMERIC NOT NULL,
		txn_status TEXT NOT NULL,
		description TEXT,
		created_at DATETIME
	);`)
}

func createEtransferTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE etransfer_recipients (
		recipient_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		recipient_name TEXT NOT NULL,
		email_address TEXT NOT NULL,
		security_question TEXT NOT NULL,
		security_answer TEXT NOT NULL,
		dc_contact_id TEXT,
		recipient_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE etransfers (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		transaction_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		fee_amount NUMERIC NOT NULL DEFAULT 0,
		recipient_name TEXT NOT NULL,
		submitted_at DATETIME
	);`)
}

func createBillPaymentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bill_payees (
		payee_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		payee_name TEXT NOT NULL,
		payee_code TEXT NOT NULL,
		account_number TEXT NOT NULL,
		payee_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE bill_payments (
		rec_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		payee_name TEXT NOT NULL,
		account_number TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		fee_amount NUMERIC NOT NULL DEFAULT 0,
		reference_id TEXT,
		submitted_at DATETIME
	);`)
}

func createFeeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE fees (
		fee_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		fee_type TEXT NOT NULL,
		fee_value NUMERIC NOT NULL,
		currency_code TEXT NOT NULL DEFAULT 'CAD',
		fee_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStoreTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stores (
		store_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		store_name TEXT NOT NULL,
		store_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE clients (
		client_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_name TEXT NOT NULL,
		client_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE customers (
		customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		city TEXT,
		country TEXT DEFAULT 'ca',
		customer_status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

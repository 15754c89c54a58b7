package migrations

import (
	"database/sql"
	"time"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		email VARCHAR(50) NOT NULL,
		phone VARCHAR(20) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS customer_accounts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		password VARCHAR(50) NOT NULL,
		customer_id INT NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers(id)
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		price DOUBLE NOT NULL,
		stock INT NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		order_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		quantity INT NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers(id)
	);`,
	`CREATE TABLE IF NOT EXISTS order_product (
		order_id INT NOT NULL,
		product_id INT NOT NULL,
		PRIMARY KEY (order_id, product_id),
		FOREIGN KEY (order_id) REFERENCES orders(id),
		FOREIGN KEY (product_id) REFERENCES products(id)
	);`,
}

// AutoMigrate creates every table if it does not exist. Each statement is
// retried a few times so a freshly started database has time to settle.
func AutoMigrate(db *sql.DB, retries int) error {
	for _, query := range statements {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

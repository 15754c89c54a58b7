package entity

import "time"

type Order struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customer_id"`
	ProductIDs []int     `json:"product_ids"`
	Quantity   int       `json:"quantity"`
	OrderDate  time.Time `json:"order_date"`
}

// OrderRequest is the payload accepted on create. OrderDate is a plain
// YYYY-MM-DD string; the handler parses it before anything is persisted.
type OrderRequest struct {
	CustomerID int    `json:"customer_id"`
	ProductIDs []int  `json:"product_ids"`
	Quantity   int    `json:"quantity"`
	OrderDate  string `json:"order_date"`
}

/*
Mysql Schema:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	customer_id INT NOT NULL,
	order_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	quantity INT NOT NULL,
	FOREIGN KEY (customer_id) REFERENCES customers(id)
);

CREATE TABLE order_product (
	order_id INT NOT NULL,
	product_id INT NOT NULL,
	PRIMARY KEY (order_id, product_id),
	FOREIGN KEY (order_id) REFERENCES orders(id),
	FOREIGN KEY (product_id) REFERENCES products(id)
);
*/

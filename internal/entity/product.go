package entity

type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductRequest is the payload accepted on create. Price and Stock are
// pointers so a present zero value passes the required check.
type ProductRequest struct {
	Name  string   `json:"name" validate:"required,min=1"`
	Price *float64 `json:"price" validate:"required"`
	Stock *int     `json:"stock" validate:"required"`
}

// ProductUpdateRequest is the payload accepted on update. Stock is only
// mutated through the dedicated stock adjustment endpoint.
type ProductUpdateRequest struct {
	Name  string   `json:"name" validate:"required,min=1"`
	Price *float64 `json:"price" validate:"required"`
}

// StockAdjustRequest carries a signed delta applied to a product's stock.
type StockAdjustRequest struct {
	Stock *int `json:"stock"`
}

/*
Mysql Schema:

CREATE TABLE products (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	price DOUBLE NOT NULL,
	stock INT NOT NULL DEFAULT 0
);
*/

package entity

// CustomerAccount holds the login credentials attached to a customer.
// Passwords are stored as-is; hashing is out of scope for this service.
type CustomerAccount struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	CustomerID int    `json:"customer_id"`
}

// CustomerAccountRequest is the payload accepted on create and update. The
// customer reference only matters on create; updates leave it untouched.
type CustomerAccountRequest struct {
	Username   string `json:"username" validate:"required,min=1"`
	Password   string `json:"password" validate:"required,min=1"`
	CustomerID int    `json:"customer_id"`
}

/*
Mysql Schema:

CREATE TABLE customer_accounts (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL,
	password VARCHAR(50) NOT NULL,
	customer_id INT NOT NULL,
	FOREIGN KEY (customer_id) REFERENCES customers(id)
);
*/

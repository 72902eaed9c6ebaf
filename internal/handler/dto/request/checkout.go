package request

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Number        string `json:"number" binding:"required"`
	Complement    string `json:"complement,omitempty"`
}

package request

type LookupAddressRequest struct {
	PostalCode string `json:"postal_code" binding:"required"`
}

package dto

type UserOption struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DropdownsResponse struct {
	ProductLines []string `json:"product_lines"`
	Plants       []string `json:"plants"`
	Customers    []string `json:"customers"`
}

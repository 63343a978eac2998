package dto

import "github.com/spec-kit/contact-service/internal/domain"

// ContactRequest is the body of create and update calls. Absent or null fields stay nil.
type ContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Patch converts the request into a domain patch.
func (r ContactRequest) Patch() domain.ContactPatch {
	return domain.ContactPatch{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

package domain

import "time"

// Contact is a person's contact details.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactPatch carries the contact fields present in a request; nil means absent.
type ContactPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// IsEmpty reports whether no field is present.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil
}

// Fields lists the names of the present fields in column order.
func (p ContactPatch) Fields() []string {
	fields := make([]string, 0, 4)
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.Address != nil {
		fields = append(fields, "address")
	}
	return fields
}

// ContactFilter narrows contact listings.
type ContactFilter struct {
	// Search matches name, email or phone case-insensitively as a substring.
	Search string
}

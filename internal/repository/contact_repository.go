package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/spec-kit/contact-service/internal/domain"
)

const contactColumns = "id, name, email, phone, address, created_at, updated_at"

// ContactRepository manages contact persistence.
type ContactRepository interface {
	List(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db DBTX
}

// NewContactRepository builds the repository.
func NewContactRepository(db DBTX) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) List(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	var args []any
	if search := strings.TrimSpace(filter.Search); search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Contact, 0)
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Address,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query := `
        INSERT INTO contacts (id, name, email, phone, address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + contactColumns

	stored, err := r.scanOne(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Address,
	)
	if err != nil {
		return err
	}
	*contact = *stored
	return nil
}

// Update writes only the fields present in patch. Column names come from a fixed allow-list.
func (r *contactRepository) Update(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	assignments := make([]string, 0, 5)
	args := make([]any, 0, 5)
	set := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	set("name", patch.Name)
	set("email", patch.Email)
	set("phone", patch.Phone)
	set("address", patch.Address)
	if len(assignments) == 0 {
		return nil, fmt.Errorf("update contact %s: no fields", id)
	}
	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE contacts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), len(args), contactColumns)
	return r.scanOne(ctx, query, args...)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contacts WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Address,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &contact, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

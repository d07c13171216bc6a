package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/platform/logger"
	"github.com/gocontacts/contacts-api/internal/store"
)

// ContactStore implements the store.ContactStore interface using a
// PostgreSQL database as the storage backend. Every query is scoped to the
// owning username so ownership is enforced inside single statements.
type ContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContactStore creates a new PostgreSQL implementation of
// store.ContactStore.
func NewContactStore(db store.DBTX, logger *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

var _ store.ContactStore = (*ContactStore)(nil)

// Create implements store.ContactStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", contact.Username))
		return err
	}

	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		contact.Username,
		contact.FirstName,
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
		contact.CreatedAt,
		contact.UpdatedAt,
	).Scan(&contact.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during contact creation",
				slog.String("username", contact.Username))
			return fmt.Errorf("%w: user %s not found",
				store.ErrInvalidEntity, contact.Username)
		}
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("username", contact.Username))
		return err
	}

	log.Info("contact created successfully",
		slog.Int64("contact_id", contact.ID),
		slog.String("username", contact.Username))
	return nil
}

// GetByID implements store.ContactStore.GetByID.
func (s *ContactStore) GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
		WHERE id = $1 AND username = $2
	`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found",
				slog.Int64("contact_id", id),
				slog.String("username", username))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact by ID",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return nil, err
	}

	return contact, nil
}

// Update implements store.ContactStore.Update.
// All mutable fields are overwritten in one conditional statement.
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}

	contact.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6 AND username = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		contact.FirstName,
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
		contact.UpdatedAt,
		contact.ID,
		contact.Username,
	)

	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("contact not found for update",
			slog.Int64("contact_id", contact.ID),
			slog.String("username", contact.Username))
		return store.ErrContactNotFound
	}

	log.Info("contact updated successfully",
		slog.Int64("contact_id", contact.ID))
	return nil
}

// Delete implements store.ContactStore.Delete.
// Addresses are removed by the schema's ON DELETE CASCADE.
func (s *ContactStore) Delete(ctx context.Context, username string, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM contacts
		WHERE id = $1 AND username = $2
	`
	result, err := s.db.ExecContext(ctx, query, id, username)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("contact not found for delete",
			slog.Int64("contact_id", id),
			slog.String("username", username))
		return store.ErrContactNotFound
	}

	log.Info("contact deleted successfully",
		slog.Int64("contact_id", id),
		slog.String("username", username))
	return nil
}

// Exists implements store.ContactStore.Exists.
func (s *ContactStore) Exists(ctx context.Context, username string, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT count(*)
		FROM contacts
		WHERE id = $1 AND username = $2
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, id, username).Scan(&count); err != nil {
		log.Error("failed to count contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return false, err
	}

	return count == 1, nil
}

// List implements store.ContactStore.List.
func (s *ContactStore) List(ctx context.Context, filter store.ContactFilter) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := buildContactFilter(filter)
	query := `
		SELECT id, username, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
	` + where + fmt.Sprintf(`
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query contacts",
			slog.String("error", err.Error()),
			slog.String("username", filter.Username))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Error("failed to scan contact row",
				slog.String("error", err.Error()))
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed contacts",
		slog.String("username", filter.Username),
		slog.Int("count", len(contacts)))
	return contacts, nil
}

// Count implements store.ContactStore.Count.
func (s *ContactStore) Count(ctx context.Context, filter store.ContactFilter) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := buildContactFilter(filter)
	query := `
		SELECT count(*)
		FROM contacts
	` + where

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Error("failed to count contacts",
			slog.String("error", err.Error()),
			slog.String("username", filter.Username))
		return 0, err
	}

	return total, nil
}

// WithTx implements store.ContactStore.WithTx.
func (s *ContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &ContactStore{
		db:     tx,
		logger: s.logger,
	}
}

// buildContactFilter renders the conjunctive WHERE clause for the search
// filter. The owner predicate is always present; name matches first or last
// name, and all text filters are case-insensitive substring matches.
func buildContactFilter(filter store.ContactFilter) (string, []any) {
	where := `
		WHERE username = $1
	`
	args := []any{filter.Username}

	if filter.Name != "" {
		where += fmt.Sprintf(
			"		AND (first_name ILIKE $%d OR last_name ILIKE $%d)\n",
			len(args)+1, len(args)+1)
		args = append(args, containsPattern(filter.Name))
	}
	if filter.Email != "" {
		where += fmt.Sprintf("		AND email ILIKE $%d\n", len(args)+1)
		args = append(args, containsPattern(filter.Email))
	}
	if filter.Phone != "" {
		where += fmt.Sprintf("		AND phone ILIKE $%d\n", len(args)+1)
		args = append(args, containsPattern(filter.Phone))
	}

	return where, args
}

// containsPattern wraps a filter value into an ILIKE substring pattern.
// LIKE metacharacters in the value are escaped so the filter matches them
// literally.
func containsPattern(s string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(s) + "%"
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	var lastName, email, phone sql.NullString

	err := row.Scan(
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&lastName,
		&email,
		&phone,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String
	return &contact, nil
}

// nullable maps an empty string to NULL so optional columns stay NULL
// instead of collecting empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

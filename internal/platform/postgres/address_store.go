package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/platform/logger"
	"github.com/gocontacts/contacts-api/internal/store"
)

// AddressStore implements the store.AddressStore interface using a
// PostgreSQL database as the storage backend. Every query is scoped to the
// owning contact ID.
type AddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAddressStore creates a new PostgreSQL implementation of
// store.AddressStore.
func NewAddressStore(db store.DBTX, logger *slog.Logger) *AddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

var _ store.AddressStore = (*AddressStore)(nil)

// Create implements store.AddressStore.Create.
// Returns store.ErrInvalidEntity if the owning contact does not exist.
func (s *AddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return err
	}

	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		address.ContactID,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
		address.CreatedAt,
		address.UpdatedAt,
	).Scan(&address.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during address creation",
				slog.Int64("contact_id", address.ContactID))
			return fmt.Errorf("%w: contact %d not found",
				store.ErrInvalidEntity, address.ContactID)
		}
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return err
	}

	log.Info("address created successfully",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	return nil
}

// GetByID implements store.AddressStore.GetByID.
func (s *AddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, contact_id, street, city, province, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`

	address, err := scanAddress(s.db.QueryRowContext(ctx, query, id, contactID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found",
				slog.Int64("address_id", id),
				slog.Int64("contact_id", contactID))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address by ID",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return nil, err
	}

	return address, nil
}

// Update implements store.AddressStore.Update.
// All mutable fields are overwritten in one conditional statement.
func (s *AddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	address.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = $6
		WHERE id = $7 AND contact_id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
		address.UpdatedAt,
		address.ID,
		address.ContactID,
	)

	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("address not found for update",
			slog.Int64("address_id", address.ID),
			slog.Int64("contact_id", address.ContactID))
		return store.ErrAddressNotFound
	}

	log.Info("address updated successfully",
		slog.Int64("address_id", address.ID))
	return nil
}

// Delete implements store.AddressStore.Delete.
func (s *AddressStore) Delete(ctx context.Context, contactID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM addresses
		WHERE id = $1 AND contact_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, id, contactID)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("address not found for delete",
			slog.Int64("address_id", id),
			slog.Int64("contact_id", contactID))
		return store.ErrAddressNotFound
	}

	log.Info("address deleted successfully",
		slog.Int64("address_id", id),
		slog.Int64("contact_id", contactID))
	return nil
}

// ListByContact implements store.AddressStore.ListByContact.
func (s *AddressStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, contact_id, street, city, province, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, contactID)
	if err != nil {
		log.Error("failed to query addresses",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contactID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	addresses := []*domain.Address{}
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			log.Error("failed to scan address row",
				slog.String("error", err.Error()))
			return nil, err
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed addresses",
		slog.Int64("contact_id", contactID),
		slog.Int("count", len(addresses)))
	return addresses, nil
}

// WithTx implements store.AddressStore.WithTx.
func (s *AddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &AddressStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var address domain.Address
	var street, city, province sql.NullString

	err := row.Scan(
		&address.ID,
		&address.ContactID,
		&street,
		&city,
		&province,
		&address.Country,
		&address.PostalCode,
		&address.CreatedAt,
		&address.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	address.Street = street.String
	address.City = city.String
	address.Province = province.String
	return &address, nil
}

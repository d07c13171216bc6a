package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/mocks"
	"github.com/gocontacts/contacts-api/internal/store"
)

func newTestAddressService(t *testing.T) (*AddressServiceImpl, *mocks.MockAddressStore, *domain.Contact) {
	t.Helper()

	contactStore := mocks.NewMockContactStore()
	addressStore := mocks.NewMockAddressStore()
	contactSvc := NewContactService(contactStore, slog.Default())

	contact, err := contactSvc.Create(context.Background(), "test", ContactInput{
		FirstName: "first_test",
	})
	require.NoError(t, err)

	svc := NewAddressService(contactStore, addressStore, slog.Default())
	return svc, addressStore, contact
}

func createTestAddress(t *testing.T, svc *AddressServiceImpl, contactID int64) *domain.Address {
	t.Helper()
	address, err := svc.Create(context.Background(), "test", contactID, AddressInput{
		Street:     "jalan test",
		City:       "kota test",
		Province:   "provinsi test",
		Country:    "indonesia",
		PostalCode: "23232",
	})
	require.NoError(t, err)
	return address
}

func TestAddressCreate(t *testing.T) {
	svc, addressStore, contact := newTestAddressService(t)

	address := createTestAddress(t, svc, contact.ID)

	assert.Equal(t, int64(1), address.ID)
	assert.Equal(t, contact.ID, address.ContactID)
	assert.Equal(t, "indonesia", address.Country)
	assert.Len(t, addressStore.Addresses, 1)
}

func TestAddressCreateContactNotOwned(t *testing.T) {
	svc, addressStore, contact := newTestAddressService(t)

	_, err := svc.Create(context.Background(), "intruder", contact.ID, AddressInput{
		Country:    "indonesia",
		PostalCode: "23232",
	})
	assert.ErrorIs(t, err, store.ErrContactNotFound)
	assert.Empty(t, addressStore.Addresses)

	_, err = svc.Create(context.Background(), "test", contact.ID+100, AddressInput{
		Country:    "indonesia",
		PostalCode: "23232",
	})
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressGet(t *testing.T) {
	svc, _, contact := newTestAddressService(t)
	created := createTestAddress(t, svc, contact.ID)

	got, err := svc.Get(context.Background(), "test", contact.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "jalan test", got.Street)

	// Each link in the ownership chain is checked.
	_, err = svc.Get(context.Background(), "intruder", contact.ID, created.ID)
	assert.ErrorIs(t, err, store.ErrContactNotFound)

	_, err = svc.Get(context.Background(), "test", contact.ID, created.ID+100)
	assert.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressUpdate(t *testing.T) {
	svc, addressStore, contact := newTestAddressService(t)
	created := createTestAddress(t, svc, contact.ID)

	// Full replace: omitted optional fields are cleared.
	updated, err := svc.Update(context.Background(), "test", contact.ID, created.ID, AddressInput{
		Country:    "japan",
		PostalCode: "11111",
	})
	require.NoError(t, err)
	assert.Equal(t, "japan", updated.Country)
	assert.Empty(t, updated.Street)

	stored := addressStore.Addresses[created.ID]
	assert.Equal(t, "japan", stored.Country)
	assert.Empty(t, stored.City)
}

func TestAddressUpdateNotFound(t *testing.T) {
	svc, _, contact := newTestAddressService(t)

	_, err := svc.Update(context.Background(), "test", contact.ID, 42, AddressInput{
		Country:    "japan",
		PostalCode: "11111",
	})
	assert.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressRemove(t *testing.T) {
	svc, addressStore, contact := newTestAddressService(t)
	created := createTestAddress(t, svc, contact.ID)

	require.NoError(t, svc.Remove(context.Background(), "test", contact.ID, created.ID))
	assert.Empty(t, addressStore.Addresses)

	err := svc.Remove(context.Background(), "test", contact.ID, created.ID)
	assert.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressList(t *testing.T) {
	svc, _, contact := newTestAddressService(t)
	createTestAddress(t, svc, contact.ID)
	createTestAddress(t, svc, contact.ID)

	addresses, err := svc.List(context.Background(), "test", contact.ID)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
	assert.Less(t, addresses[0].ID, addresses[1].ID, "listing is ordered by ID")

	_, err = svc.List(context.Background(), "intruder", contact.ID)
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
)

func TestEtransferRecipientRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createEtransferTables(t, db)
	repo := NewEtransferRecipientRepository(db)
	ctx := context.Background()

	rec, err := repo.Create(ctx, &entities.EtransferRecipient{
		CustomerID:       5,
		Name:             "Jamie R",
		Email:            "jamie@example.com",
		SecurityQuestion: "Favourite colour",
		SecurityAnswer:   "teal",
	})
	require.NoError(t, err)
	require.Equal(t, entities.RecipientStatusActive, rec.Status)
	require.False(t, rec.DCContactID.Valid)

	// Registration with the partner backfills the contact id.
	withContact, err := repo.UpdateContactID(ctx, rec.ID, "DC-881")
	require.NoError(t, err)
	require.True(t, withContact.DCContactID.Valid)
	require.Equal(t, "DC-881", withContact.DCContactID.String)

	updated, err := repo.UpdateContact(ctx, 5, rec.ID, "Jamie R", "jamie+new@example.com", "Favourite city", "regina")
	require.NoError(t, err)
	require.Equal(t, "jamie+new@example.com", updated.Email)
	require.Equal(t, "Favourite city", updated.SecurityQuestion)

	_, err = repo.UpdateContact(ctx, 6, rec.ID, "x", "x@example.com", "q", "a")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	byName, err := repo.GetByName(ctx, 5, "Jamie R")
	require.NoError(t, err)
	require.Equal(t, rec.ID, byName.ID)

	inactive, err := repo.ChangeStatus(ctx, rec.ID, entities.RecipientStatusInactive)
	require.NoError(t, err)
	require.Equal(t, entities.RecipientStatusInactive, inactive.Status)

	active, err := repo.GetByCustomerID(ctx, 5, true)
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := repo.GetByCustomerID(ctx, 5, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestEtransferRecipientRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createEtransferTables(t, db)
	repo := NewEtransferRecipientRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 5, 99)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByName(ctx, 5, "nobody")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.UpdateContactID(ctx, 99, "DC-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.ChangeStatus(ctx, 99, entities.RecipientStatusInactive)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEtransferRepository_CreateAndWindow(t *testing.T) {
	db := newTestDB(t)
	createEtransferTables(t, db)
	repo := NewEtransferRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, &entities.Etransfer{
		CustomerID:    5,
		TransactionID: "ET-1001",
		Amount:        decimal.RequireFromString("20.00"),
		FeeAmount:     decimal.RequireFromString("1.50"),
		RecipientName: "Jamie R",
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	rows, err := repo.GetByCustomerID(ctx, 5, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "ET-1001", rows[0].TransactionID)
	require.True(t, rows[0].FeeAmount.Equal(decimal.RequireFromString("1.50")))

	rows, err = repo.GetByCustomerID(ctx, 6, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, rows)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/phonecustody/internal/model"
)

func acmePhone() model.PhoneFields {
	return model.PhoneFields{
		Brand: ptr("Acme"),
		Model: ptr("X1"),
		Imei:  ptr("000111"),
	}
}

func TestPhoneRepository_CreateFindOne(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))
	ctx := context.Background()

	purchased := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	fields := acmePhone()
	fields.PurchaseDate = model.Some(purchased)
	fields.Origin = model.Some("DE")

	created, err := repo.Create(ctx, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.PhoneID)

	found, err := repo.FindOne(ctx, created.PhoneID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "Acme", found.Brand)
	assert.Equal(t, "X1", found.Model)
	assert.Equal(t, "000111", found.Imei)
	require.NotNil(t, found.PurchaseDate)
	assert.True(t, purchased.Equal(*found.PurchaseDate))
	assert.Equal(t, "DE", *found.Origin)
	assert.Nil(t, found.Status)
	assert.Empty(t, found.OwnershipRecords)
}

func TestPhoneRepository_CreateMissingRequiredColumn(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))

	_, err := repo.Create(context.Background(), model.PhoneFields{Brand: ptr("Acme")})
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23502", pgErr.Code)
}

func TestPhoneRepository_FindOneMissing(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))

	found, err := repo.FindOne(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPhoneRepository_UpdateOnlyPresentFields(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, acmePhone())
	require.NoError(t, err)

	affected, err := repo.Update(ctx, created.PhoneID, model.PhoneFields{Status: model.Some("stolen")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindOne(ctx, created.PhoneID)
	require.NoError(t, err)
	assert.Equal(t, "stolen", *found.Status)
	assert.Equal(t, "Acme", found.Brand)
	assert.Equal(t, "000111", found.Imei)
}

func TestPhoneRepository_UpdateNullClearsColumn(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))
	ctx := context.Background()

	purchased := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	fields := acmePhone()
	fields.PurchaseDate = model.Some(purchased)
	fields.Origin = model.Some("DE")
	fields.Status = model.Some("active")
	created, err := repo.Create(ctx, fields)
	require.NoError(t, err)

	var req model.UpdatePhoneRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Status": null, "PurchaseDate": null}`), &req))

	affected, err := repo.Update(ctx, created.PhoneID, req.PhoneFields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindOne(ctx, created.PhoneID)
	require.NoError(t, err)
	assert.Nil(t, found.Status)
	assert.Nil(t, found.PurchaseDate)
	require.NotNil(t, found.Origin)
	assert.Equal(t, "DE", *found.Origin)
}

func TestPhoneRepository_UpdateEmptyPayload(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, acmePhone())
	require.NoError(t, err)

	affected, err := repo.Update(ctx, created.PhoneID, model.PhoneFields{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Update(ctx, 9999, model.PhoneFields{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestPhoneRepository_MissingIDAffectsNothing(t *testing.T) {
	repo := NewPhoneRepository(requireDB(t))
	ctx := context.Background()

	affected, err := repo.Update(ctx, 9999, model.PhoneFields{Brand: ptr("Other")})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	affected, err = repo.Remove(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestPhoneRepository_FindAllWithRecords(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	phones := NewPhoneRepository(pool)
	owners := NewOwnerRepository(pool)
	records := NewOwnershipRecordRepository(pool)

	first, err := phones.Create(ctx, acmePhone())
	require.NoError(t, err)
	second, err := phones.Create(ctx, model.PhoneFields{Brand: ptr("Zed"), Model: ptr("Z"), Imei: ptr("222")})
	require.NoError(t, err)
	owner, err := owners.Create(ctx, model.OwnerFields{FirstName: ptr("A"), LastName: ptr("B")})
	require.NoError(t, err)

	_, err = records.Create(ctx, model.CreateOwnershipRecordRequest{
		Owner:                 &model.OwnerRef{ID: owner.OwnerID},
		Phone:                 &model.PhoneRef{ID: first.PhoneID},
		OwnershipRecordFields: model.OwnershipRecordFields{DateAcquired: ptr(time.Now().UTC())},
	})
	require.NoError(t, err)

	all, err := phones.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, first.PhoneID, all[0].PhoneID)
	require.Len(t, all[0].OwnershipRecords, 1)
	require.NotNil(t, all[0].OwnershipRecords[0].Owner)
	assert.Equal(t, owner.OwnerID, all[0].OwnershipRecords[0].Owner.OwnerID)
	assert.Nil(t, all[0].OwnershipRecords[0].Phone)

	assert.Equal(t, second.PhoneID, all[1].PhoneID)
	assert.Empty(t, all[1].OwnershipRecords)
}

func TestPhoneRepository_RemoveCascadesRecords(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	phones := NewPhoneRepository(pool)
	records := NewOwnershipRecordRepository(pool)

	rec, err := records.Create(ctx, model.CreateOwnershipRecordRequest{
		Owner:                 &model.OwnerRef{New: &model.OwnerFields{FirstName: ptr("A"), LastName: ptr("B")}},
		Phone:                 &model.PhoneRef{New: ptr(acmePhone())},
		OwnershipRecordFields: model.OwnershipRecordFields{DateAcquired: ptr(time.Now().UTC())},
	})
	require.NoError(t, err)

	affected, err := phones.Remove(ctx, rec.Phone.PhoneID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := records.FindOne(ctx, rec.OwnershipRecordID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

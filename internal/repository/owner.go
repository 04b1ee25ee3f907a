package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/phonecustody/internal/database"
	"github.com/deppfellow/phonecustody/internal/model"
)

const ownerColumns = `owner_id, first_name, last_name, email, country, address, passport, nid, city, state, zip, phone, owner_type`

func ownerDest(o *model.Owner) []any {
	return []any{
		&o.OwnerID, &o.FirstName, &o.LastName, &o.Email, &o.Country, &o.Address,
		&o.Passport, &o.Nid, &o.City, &o.State, &o.Zip, &o.Phone, &o.OwnerType,
	}
}

func scanOwner(row pgx.Row) (*model.Owner, error) {
	var o model.Owner
	if err := row.Scan(ownerDest(&o)...); err != nil {
		return nil, err
	}
	return &o, nil
}

type OwnerRepository struct {
	db database.Querier
}

func NewOwnerRepository(db database.Querier) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, fields model.OwnerFields) (*model.Owner, error) {
	return insertOwner(ctx, r.db, fields)
}

func insertOwner(ctx context.Context, q database.Querier, f model.OwnerFields) (*model.Owner, error) {
	stmt := `
		INSERT INTO owners (first_name, last_name, email, country, address, passport, nid, city, state, zip, phone, owner_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + ownerColumns

	owner, err := scanOwner(q.QueryRow(ctx, stmt,
		f.FirstName, f.LastName, f.Email.Ptr(), f.Country.Ptr(), f.Address.Ptr(), f.Passport.Ptr(),
		f.Nid.Ptr(), f.City.Ptr(), f.State.Ptr(), f.Zip.Ptr(), f.Phone.Ptr(), f.OwnerType.Ptr(),
	))
	if err != nil {
		return nil, fmt.Errorf("insert owner: %w", err)
	}
	return owner, nil
}

// FindAll returns every owner with its ownership records.
func (r *OwnerRepository) FindAll(ctx context.Context) ([]model.Owner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY owner_id`)
	if err != nil {
		return nil, fmt.Errorf("select owners: %w", err)
	}

	owners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Owner, error) {
		o, err := scanOwner(row)
		if err != nil {
			return model.Owner{}, err
		}
		return *o, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan owners: %w", err)
	}

	ids := make([]int64, len(owners))
	for i := range owners {
		ids[i] = owners[i].OwnerID
	}

	records, err := selectRecords(ctx, r.db, `WHERE r.owner_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byOwner := make(map[int64][]model.OwnershipRecord, len(owners))
	for _, rec := range records {
		rec.Owner = nil
		byOwner[rec.OwnerID] = append(byOwner[rec.OwnerID], rec)
	}
	for i := range owners {
		owners[i].OwnershipRecords = byOwner[owners[i].OwnerID]
	}

	return owners, nil
}

// FindOne returns the owner with its ownership records, or nil when absent.
func (r *OwnerRepository) FindOne(ctx context.Context, id int64) (*model.Owner, error) {
	owner, err := scanOwner(r.db.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE owner_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select owner %d: %w", id, err)
	}

	records, err := selectRecords(ctx, r.db, `WHERE r.owner_id = $1`, id)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Owner = nil
	}
	owner.OwnershipRecords = records

	return owner, nil
}

// Update writes only the supplied fields and returns the affected-row count.
// An explicit null on a nullable column stores NULL.
func (r *OwnerRepository) Update(ctx context.Context, id int64, f model.OwnerFields) (int64, error) {
	if f.IsEmpty() {
		return countRows(ctx, r.db, `SELECT count(*) FROM owners WHERE owner_id = $1`, id)
	}

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("owners")

	var sets []string
	if f.FirstName != nil {
		sets = append(sets, ub.Assign("first_name", *f.FirstName))
	}
	if f.LastName != nil {
		sets = append(sets, ub.Assign("last_name", *f.LastName))
	}

	nullable := []struct {
		name  string
		value model.Optional[string]
	}{
		{"email", f.Email},
		{"country", f.Country},
		{"address", f.Address},
		{"passport", f.Passport},
		{"nid", f.Nid},
		{"city", f.City},
		{"state", f.State},
		{"zip", f.Zip},
		{"phone", f.Phone},
		{"owner_type", f.OwnerType},
	}
	for _, col := range nullable {
		if col.value.Set {
			sets = append(sets, ub.Assign(col.name, col.value.Ptr()))
		}
	}

	ub.Set(sets...)
	ub.Where(ub.Equal("owner_id", id))

	return execAffected(ctx, r.db, ub, "update owner")
}

// Remove deletes the owner; its ownership records go with it.
func (r *OwnerRepository) Remove(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE owner_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete owner %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

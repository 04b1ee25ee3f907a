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

const phoneColumns = `phone_id, brand, model, imei, purchase_date, origin, status`

func phoneDest(p *model.Phone) []any {
	return []any{&p.PhoneID, &p.Brand, &p.Model, &p.Imei, &p.PurchaseDate, &p.Origin, &p.Status}
}

func scanPhone(row pgx.Row) (*model.Phone, error) {
	var p model.Phone
	if err := row.Scan(phoneDest(&p)...); err != nil {
		return nil, err
	}
	return &p, nil
}

type PhoneRepository struct {
	db database.Querier
}

func NewPhoneRepository(db database.Querier) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// Create inserts a phone. Absent fields are stored as NULL.
func (r *PhoneRepository) Create(ctx context.Context, fields model.PhoneFields) (*model.Phone, error) {
	return insertPhone(ctx, r.db, fields)
}

func insertPhone(ctx context.Context, q database.Querier, f model.PhoneFields) (*model.Phone, error) {
	stmt := `
		INSERT INTO phones (brand, model, imei, purchase_date, origin, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + phoneColumns

	phone, err := scanPhone(q.QueryRow(ctx, stmt, f.Brand, f.Model, f.Imei, f.PurchaseDate.Ptr(), f.Origin.Ptr(), f.Status.Ptr()))
	if err != nil {
		return nil, fmt.Errorf("insert phone: %w", err)
	}
	return phone, nil
}

// FindAll returns every phone with its ownership records.
func (r *PhoneRepository) FindAll(ctx context.Context) ([]model.Phone, error) {
	rows, err := r.db.Query(ctx, `SELECT `+phoneColumns+` FROM phones ORDER BY phone_id`)
	if err != nil {
		return nil, fmt.Errorf("select phones: %w", err)
	}

	phones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Phone, error) {
		p, err := scanPhone(row)
		if err != nil {
			return model.Phone{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan phones: %w", err)
	}

	ids := make([]int64, len(phones))
	for i := range phones {
		ids[i] = phones[i].PhoneID
	}

	records, err := selectRecords(ctx, r.db, `WHERE r.phone_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byPhone := make(map[int64][]model.OwnershipRecord, len(phones))
	for _, rec := range records {
		rec.Phone = nil
		byPhone[rec.PhoneID] = append(byPhone[rec.PhoneID], rec)
	}
	for i := range phones {
		phones[i].OwnershipRecords = byPhone[phones[i].PhoneID]
	}

	return phones, nil
}

// FindOne returns the phone with its ownership records, or nil when absent.
func (r *PhoneRepository) FindOne(ctx context.Context, id int64) (*model.Phone, error) {
	phone, err := scanPhone(r.db.QueryRow(ctx, `SELECT `+phoneColumns+` FROM phones WHERE phone_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select phone %d: %w", id, err)
	}

	records, err := selectRecords(ctx, r.db, `WHERE r.phone_id = $1`, id)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Phone = nil
	}
	phone.OwnershipRecords = records

	return phone, nil
}

// Update writes only the supplied fields and returns the affected-row count.
// An explicit null on a nullable column stores NULL.
func (r *PhoneRepository) Update(ctx context.Context, id int64, f model.PhoneFields) (int64, error) {
	if f.IsEmpty() {
		return countRows(ctx, r.db, `SELECT count(*) FROM phones WHERE phone_id = $1`, id)
	}

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("phones")

	var sets []string
	if f.Brand != nil {
		sets = append(sets, ub.Assign("brand", *f.Brand))
	}
	if f.Model != nil {
		sets = append(sets, ub.Assign("model", *f.Model))
	}
	if f.Imei != nil {
		sets = append(sets, ub.Assign("imei", *f.Imei))
	}
	if f.PurchaseDate.Set {
		sets = append(sets, ub.Assign("purchase_date", f.PurchaseDate.Ptr()))
	}
	if f.Origin.Set {
		sets = append(sets, ub.Assign("origin", f.Origin.Ptr()))
	}
	if f.Status.Set {
		sets = append(sets, ub.Assign("status", f.Status.Ptr()))
	}

	ub.Set(sets...)
	ub.Where(ub.Equal("phone_id", id))

	return execAffected(ctx, r.db, ub, "update phone")
}

// Remove deletes the phone; its ownership records go with it.
func (r *PhoneRepository) Remove(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM phones WHERE phone_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete phone %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/phonecustody/internal/database"
	"github.com/deppfellow/phonecustody/internal/model"
)

const recordColumns = `ownership_record_id, owner_id, phone_id, date_acquired, date_relinquished, current_owner`

// recordSelect joins each record to its owner and phone. Callers append a
// WHERE clause; ordering is fixed.
var recordSelect = `
	SELECT ` + qualify("r", recordColumns) + `, ` + qualify("o", ownerColumns) + `, ` + qualify("p", phoneColumns) + `
	FROM ownership_records r
	JOIN owners o ON o.owner_id = r.owner_id
	JOIN phones p ON p.phone_id = r.phone_id
	%s
	ORDER BY r.date_acquired, r.ownership_record_id`

func qualify(alias, columns string) string {
	cols := strings.Split(columns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanRecord(row pgx.Row) (model.OwnershipRecord, error) {
	var (
		rec   model.OwnershipRecord
		owner model.Owner
		phone model.Phone
	)

	dest := []any{
		&rec.OwnershipRecordID, &rec.OwnerID, &rec.PhoneID,
		&rec.DateAcquired, &rec.DateRelinquished, &rec.CurrentOwner,
	}
	dest = append(dest, ownerDest(&owner)...)
	dest = append(dest, phoneDest(&phone)...)

	if err := row.Scan(dest...); err != nil {
		return model.OwnershipRecord{}, err
	}

	rec.Owner = &owner
	rec.Phone = &phone
	return rec, nil
}

// selectRecords loads records with both relations populated.
func selectRecords(ctx context.Context, q database.Querier, where string, args ...any) ([]model.OwnershipRecord, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(recordSelect, where), args...)
	if err != nil {
		return nil, fmt.Errorf("select ownership records: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.OwnershipRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan ownership records: %w", err)
	}
	return records, nil
}

type OwnershipRecordRepository struct {
	db database.Querier
}

func NewOwnershipRecordRepository(db database.Querier) *OwnershipRecordRepository {
	return &OwnershipRecordRepository{db: db}
}

// Create inserts a record in one transaction. An Owner or Phone given as a
// new object is inserted first and the record points at it.
func (r *OwnershipRecordRepository) Create(ctx context.Context, req model.CreateOwnershipRecordRequest) (*model.OwnershipRecord, error) {
	var created model.OwnershipRecord

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var ownerID, phoneID *int64

		if req.Owner != nil {
			id := req.Owner.ID
			if req.Owner.New != nil {
				owner, err := insertOwner(ctx, tx, *req.Owner.New)
				if err != nil {
					return err
				}
				id = owner.OwnerID
			}
			ownerID = &id
		}

		if req.Phone != nil {
			id := req.Phone.ID
			if req.Phone.New != nil {
				phone, err := insertPhone(ctx, tx, *req.Phone.New)
				if err != nil {
					return err
				}
				id = phone.PhoneID
			}
			phoneID = &id
		}

		var recordID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO ownership_records (owner_id, phone_id, date_acquired, date_relinquished, current_owner)
			VALUES ($1, $2, $3, $4, COALESCE($5, FALSE))
			RETURNING ownership_record_id`,
			ownerID, phoneID, req.DateAcquired, req.DateRelinquished.Ptr(), req.CurrentOwner,
		).Scan(&recordID)
		if err != nil {
			return fmt.Errorf("insert ownership record: %w", err)
		}

		records, err := selectRecords(ctx, tx, `WHERE r.ownership_record_id = $1`, recordID)
		if err != nil {
			return err
		}
		if len(records) != 1 {
			return fmt.Errorf("ownership record %d not visible after insert", recordID)
		}
		created = records[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *OwnershipRecordRepository) FindAll(ctx context.Context) ([]model.OwnershipRecord, error) {
	return selectRecords(ctx, r.db, "")
}

// FindOne returns the record, or nil when absent.
func (r *OwnershipRecordRepository) FindOne(ctx context.Context, id int64) (*model.OwnershipRecord, error) {
	records, err := selectRecords(ctx, r.db, `WHERE r.ownership_record_id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// FindByPhone returns every record of the phone regardless of CurrentOwner.
func (r *OwnershipRecordRepository) FindByPhone(ctx context.Context, phoneID int64) ([]model.OwnershipRecord, error) {
	return selectRecords(ctx, r.db, `WHERE r.phone_id = $1`, phoneID)
}

// FindByOwner returns every record of the owner regardless of CurrentOwner.
func (r *OwnershipRecordRepository) FindByOwner(ctx context.Context, ownerID int64) ([]model.OwnershipRecord, error) {
	return selectRecords(ctx, r.db, `WHERE r.owner_id = $1`, ownerID)
}

// Update writes only the supplied fields. Owner and Phone may only be
// re-pointed at existing rows; a null DateRelinquished reopens the record.
func (r *OwnershipRecordRepository) Update(ctx context.Context, id int64, req model.UpdateOwnershipRecordRequest) (int64, error) {
	if req.IsEmpty() {
		return countRows(ctx, r.db, `SELECT count(*) FROM ownership_records WHERE ownership_record_id = $1`, id)
	}

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("ownership_records")

	var sets []string
	if req.Owner != nil {
		sets = append(sets, ub.Assign("owner_id", req.Owner.ID))
	}
	if req.Phone != nil {
		sets = append(sets, ub.Assign("phone_id", req.Phone.ID))
	}
	if req.DateAcquired != nil {
		sets = append(sets, ub.Assign("date_acquired", *req.DateAcquired))
	}
	if req.DateRelinquished.Set {
		sets = append(sets, ub.Assign("date_relinquished", req.DateRelinquished.Ptr()))
	}
	if req.CurrentOwner != nil {
		sets = append(sets, ub.Assign("current_owner", *req.CurrentOwner))
	}

	ub.Set(sets...)
	ub.Where(ub.Equal("ownership_record_id", id))

	return execAffected(ctx, r.db, ub, "update ownership record")
}

func (r *OwnershipRecordRepository) Remove(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ownership_records WHERE ownership_record_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete ownership record %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/phonecustody/internal/errs"
)

// constraintMessages holds hand-written messages for named constraints whose
// generic rendering would not tell the client what went wrong.
var constraintMessages = map[string]struct {
	code    string
	message string
	field   string
}{
	"ownership_records_phone_id_current_key": {
		code:    "PHONE_ALREADY_HAS_CURRENT_OWNER",
		message: "The phone already has a current owner",
		field:   "CurrentOwner",
	},
	"ownership_records_relinquished_after_acquired": {
		code:    "OWNERSHIP_RECORD_INVALID_DATES",
		message: "DateRelinquished cannot be earlier than DateAcquired",
		field:   "DateRelinquished",
	},
}

var (
	fkeyPattern   = regexp.MustCompile(`^[a-z_]+?_([a-z]+)_id_fkey$`)
	uniquePattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// entityName picks the entity a constraint failure refers to.
//
// A foreign key named "<table>_<entity>_id_fkey" or a column "<entity>_id"
// names the referenced entity; otherwise the singular table name is used.
func entityName(sqlErr *Error) string {
	if m := fkeyPattern.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
		return humanizeText(m[1])
	}
	if col := strings.ToLower(sqlErr.ColumnName); strings.HasSuffix(col, "_id") {
		return humanizeText(strings.TrimSuffix(col, "_id"))
	}
	if sqlErr.TableName != "" {
		return humanizeText(strings.TrimSuffix(sqlErr.TableName, "s"))
	}
	return "Record"
}

// generateErrorCode builds "<ENTITY>_<ACTION>", e.g. OWNER_NOT_FOUND.
func generateErrorCode(entity string, errType Code) string {
	domain := errs.MakeUpperCaseWithUnderscores(entity)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, NumericOutOfRange, StringTooLong:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// fieldName renders a snake_case column as the PascalCase JSON key clients send.
func fieldName(column string) string {
	return strings.ReplaceAll(humanizeText(column), " ", "")
}

// HandleError converts a database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - constraint violations: 400 with a generated code
//   - pgx.ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		if known, ok := constraintMessages[sqlErr.ConstraintName]; ok {
			code := known.code
			return errs.NewBadRequestError(known.message, true, &code,
				[]errs.FieldError{{Field: known.field, Error: "is invalid"}})
		}

		entity := entityName(sqlErr)
		errorCode := generateErrorCode(entity, sqlErr.Code)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(
				fmt.Sprintf("The referenced %s does not exist", entity), true, &errorCode,
				[]errs.FieldError{{Field: entity, Error: "does not exist"}})

		case UniqueViolation:
			message := fmt.Sprintf("A %s with this identifier already exists", entity)
			if m := uniquePattern.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
				message = fmt.Sprintf("A %s with this %s already exists", entity, humanizeText(m[1]))
			}
			return errs.NewBadRequestError(message, true, &errorCode, nil)

		case NotNullViolation:
			field := fieldName(sqlErr.ColumnName)
			if field == "" {
				field = "field"
			} else {
				errorCode = generateErrorCode(humanizeText(sqlErr.ColumnName), NotNullViolation)
			}
			return errs.NewBadRequestError(fmt.Sprintf("The %s is required", field), true, &errorCode,
				[]errs.FieldError{{Field: field, Error: "is required"}})

		case CheckViolation:
			return errs.NewBadRequestError("One or more values do not meet required conditions", true, &errorCode, nil)

		case InvalidText, NumericOutOfRange, StringTooLong:
			return errs.NewBadRequestError("One or more values are malformed or out of range", true, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

package email

import (
	"context"
	"strconv"
	"time"
)

// CustodyRecorded describes a newly recorded current ownership.
// It doubles as the queued task payload.
type CustodyRecorded struct {
	To                string    `json:"to"`
	OwnerFirstName    string    `json:"owner_first_name"`
	PhoneBrand        string    `json:"phone_brand"`
	PhoneModel        string    `json:"phone_model"`
	PhoneImei         string    `json:"phone_imei"`
	DateAcquired      time.Time `json:"date_acquired"`
	OwnershipRecordID int64     `json:"ownership_record_id"`
}

// Data returns the template variables for TemplateCustodyRecorded.
func (n CustodyRecorded) Data() map[string]string {
	return map[string]string{
		"OwnerFirstName":    n.OwnerFirstName,
		"PhoneBrand":        n.PhoneBrand,
		"PhoneModel":        n.PhoneModel,
		"PhoneImei":         n.PhoneImei,
		"DateAcquired":      n.DateAcquired.Format("2006-01-02"),
		"OwnershipRecordId": strconv.FormatInt(n.OwnershipRecordID, 10),
	}
}

// SendCustodyRecordedEmail tells an owner they are now recorded as holding a phone.
func (c *Client) SendCustodyRecordedEmail(ctx context.Context, n CustodyRecorded) error {
	return c.SendEmail(ctx, n.To, "You are the recorded owner of a phone", TemplateCustodyRecorded, n.Data())
}

package email

// PreviewData holds sample template data for rendering templates locally.
//
//	PreviewData["custody_recorded"]["OwnerFirstName"] == "Ada"
var PreviewData = map[Template]map[string]string{
	TemplateCustodyRecorded: {
		"OwnerFirstName":    "Ada",
		"PhoneBrand":        "Acme",
		"PhoneModel":        "X1",
		"PhoneImei":         "000111",
		"DateAcquired":      "2024-01-01",
		"OwnershipRecordId": "1",
	},
}

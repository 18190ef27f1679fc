package service

import (
	"time"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
)

// Columns of the sales table that a client edit may touch. Patch keys never
// reach the SQL text; only these constants do.
const (
	columnClientName  = "client_name"
	columnAddress     = "address"
	columnEmail       = "email"
	columnPhoneNo     = "phone_no"
	columnGstNo       = "gst_no"
	columnCompanyType = "company_type"
	columnJoinedDate  = "joined_date"
)

// ClientPatch is a partial client edit. A nil field is left untouched.
type ClientPatch struct {
	ClientName  *string
	Address     *string
	Email       *string
	Phone       *string
	GstNo       *string
	CompanyType *string
	Joined      *string
}

func (p ClientPatch) IsEmpty() bool {
	return p.ClientName == nil &&
		p.Address == nil &&
		p.Email == nil &&
		p.Phone == nil &&
		p.GstNo == nil &&
		p.CompanyType == nil &&
		p.Joined == nil
}

func (p ClientPatch) updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setString(columnClientName, p.ClientName)
	setString(columnAddress, p.Address)
	setString(columnEmail, p.Email)
	setString(columnPhoneNo, p.Phone)
	setString(columnGstNo, p.GstNo)
	setString(columnCompanyType, p.CompanyType)

	if p.Joined != nil {
		joined, err := time.Parse(dateLayout, *p.Joined)
		if err != nil {
			return nil, apperror.Validation("joined must be in YYYY-MM-DD format")
		}
		updates[columnJoinedDate] = joined
	}

	return updates, nil
}

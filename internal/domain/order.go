package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// FlexString is a JSON scalar that clients may send either as a string or as
// a number. It is kept in its string form; all comparisons and persistence
// happen on that form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Missing reports whether the value counts as absent for validation: the
// empty string or any numeric spelling of zero. "07" is present.
func (f FlexString) Missing() bool {
	s := string(f)
	if s == "" {
		return true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == 0 {
		return true
	}
	return false
}

// OrderRequest is the client-submitted order line. Unknown extra fields are
// accepted by the JSON decoder and silently discarded; only the fields below
// ever reach validation or the store.
type OrderRequest struct {
	Name            FlexString `json:"name"`
	Phone           FlexString `json:"phone"`
	PerfumeID       FlexString `json:"perfumeId"`
	Quantity        FlexString `json:"quantity"`
	DeliveryAddress FlexString `json:"deliveryAddress"`
}

// MissingFields returns the required fields left absent, empty, or zero, in
// a fixed order.
func (r OrderRequest) MissingFields() []string {
	fields := []struct {
		name  string
		value FlexString
	}{
		{"name", r.Name},
		{"phone", r.Phone},
		{"perfumeId", r.PerfumeID},
		{"quantity", r.Quantity},
		{"deliveryAddress", r.DeliveryAddress},
	}

	var missing []string
	for _, f := range fields {
		if f.value.Missing() {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// OrderDraft is a validated, catalog-enriched order awaiting its timestamp.
// PerfumeName always comes from the catalog, never from client input.
type OrderDraft struct {
	Name            string
	Phone           string
	PerfumeID       string
	PerfumeName     string
	Quantity        string
	DeliveryAddress string
}

// OrderDateFormat is the human-readable, server-local timestamp layout used
// for the date column. It sorts lexicographically.
const OrderDateFormat = "2006-01-02 15:04:05"

// Stamped fixes the draft into its durable form, dating it at the given
// write time.
func (d OrderDraft) Stamped(at time.Time) PersistedOrder {
	return PersistedOrder{
		Name:            d.Name,
		Phone:           d.Phone,
		PerfumeID:       d.PerfumeID,
		PerfumeName:     d.PerfumeName,
		Quantity:        d.Quantity,
		DeliveryAddress: d.DeliveryAddress,
		Date:            at.Format(OrderDateFormat),
	}
}

// PersistedOrder is one durable order row: exactly the seven canonical
// fields, all stringified.
type PersistedOrder struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	PerfumeID       string `json:"perfumeId"`
	PerfumeName     string `json:"perfumeName"`
	Quantity        string `json:"quantity"`
	DeliveryAddress string `json:"deliveryAddress"`
	Date            string `json:"date"`
}

// OrderColumns is the canonical store schema: these seven columns, in this
// order, always. Neither extra request fields nor the shape of a pre-existing
// store file can change it.
var OrderColumns = []string{
	"name",
	"phone",
	"perfumeId",
	"perfumeName",
	"quantity",
	"deliveryAddress",
	"date",
}

// Field returns the order's value for a canonical column, or the empty
// string for any column outside the canonical set.
func (o PersistedOrder) Field(column string) string {
	switch column {
	case "name":
		return o.Name
	case "phone":
		return o.Phone
	case "perfumeId":
		return o.PerfumeID
	case "perfumeName":
		return o.PerfumeName
	case "quantity":
		return o.Quantity
	case "deliveryAddress":
		return o.DeliveryAddress
	case "date":
		return o.Date
	default:
		return ""
	}
}

// Row projects the order through OrderColumns, in order.
func (o PersistedOrder) Row() []string {
	row := make([]string, 0, len(OrderColumns))
	for _, col := range OrderColumns {
		row = append(row, o.Field(col))
	}
	return row
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Discount is one benefit entry attached to a partner.
type Discount struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	Details     *string          `json:"details,omitempty"`
}

// UnmarshalJSON accepts either the canonical object shape or a bare string.
// Legacy rows stored free-text entries; a string becomes {description: s}
// and picks up a positional id during Normalize.
func (d *Discount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Discount{Description: s}
		return nil
	}
	type plain Discount
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Discount(p)
	return nil
}

// DiscountList is the canonical jsonb shape for partner discounts.
type DiscountList []Discount

// DiscountsFromStrings converts free-text entries into the canonical shape,
// assigning positional ids.
func DiscountsFromStrings(entries []string) DiscountList {
	if len(entries) == 0 {
		return DiscountList{}
	}
	list := make(DiscountList, 0, len(entries))
	for i, desc := range entries {
		list = append(list, Discount{
			ID:          strconv.Itoa(i),
			Description: desc,
		})
	}
	return list
}

// Normalize assigns positional ids to entries missing one and returns the
// list. Entries that already carry an id keep it.
func (l DiscountList) Normalize() DiscountList {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = strconv.Itoa(i)
		}
	}
	return l
}

// Value implements driver.Valuer for jsonb columns.
func (l DiscountList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(DiscountList{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner, normalizing whatever shape the row holds.
func (l *DiscountList) Scan(src any) error {
	if src == nil {
		*l = DiscountList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported discounts source %T", src)
	}

	if len(raw) == 0 {
		*l = DiscountList{}
		return nil
	}

	var parsed DiscountList
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decoding discounts: %w", err)
	}
	*l = parsed.Normalize()
	return nil
}

package meli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// DecodeItem parses a raw listing body. A field of an unexpected JSON type
// is left at its zero value; the item is only rejected when the body is not
// a JSON object or carries no id.
func DecodeItem(body []byte) (*Item, error) {
	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
	}
	if item.ID == "" {
		return nil, errors.New("decoding item: missing id")
	}
	return &item, nil
}

// ToListingDetail maps a raw item into a ListingDetail. It never fails:
// missing fields map to zero values and a nil item yields an empty record.
func ToListingDetail(item *Item) domain.ListingDetail {
	d := domain.ListingDetail{
		Attributes: map[string]string{},
	}
	if item == nil {
		return d
	}

	d.ID = item.ID
	d.Title = item.Title
	d.Currency = item.CurrencyID
	d.Status = domain.ListingStatus(item.Status)
	d.Condition = item.Condition
	d.ThumbnailURL = item.Thumbnail
	d.Permalink = item.Permalink

	// Price
	d.Price = parseDecimal(item.Price)

	// Stock
	if item.AvailableQuantity > 0 {
		d.AvailableQuantity = item.AvailableQuantity
	}

	// Image
	d.ImageURL = selectImage(item)

	// Shipping
	if item.Shipping != nil {
		d.Shipping = domain.Shipping{
			Mode:         item.Shipping.Mode,
			FreeShipping: item.Shipping.FreeShipping,
			LocalPickUp:  item.Shipping.LocalPickUp,
			LogisticType: item.Shipping.LogisticType,
		}
	}

	// Attributes, last duplicate wins.
	for i := range item.Attributes {
		a := &item.Attributes[i]
		key := a.Name
		if key == "" {
			key = a.ID
		}
		if key == "" {
			continue
		}
		d.Attributes[key] = attributeValue(a)
	}

	return d
}

func selectImage(item *Item) string {
	if len(item.Pictures) > 0 {
		if p := item.Pictures[0]; p.SecureURL != "" {
			return p.SecureURL
		} else if p.URL != "" {
			return p.URL
		}
	}
	if item.SecureThumbnail != "" {
		return item.SecureThumbnail
	}
	return item.Thumbnail
}

func attributeValue(a *Attribute) string {
	if a.ValueName != "" {
		return a.ValueName
	}
	if vs := a.ValueStruct; vs != nil {
		if vs.Number != nil {
			return strconv.FormatFloat(*vs.Number, 'f', -1, 64)
		}
		if vs.Unit != "" {
			return vs.Unit
		}
	}
	if len(a.Values) > 0 {
		return a.Values[0].Name
	}
	return ""
}

// parseDecimal accepts a JSON number or a numeric string and returns zero
// for anything else. The result is in canonical form (no trailing zeros)
// so it survives a JSON round trip unchanged.
func parseDecimal(raw json.RawMessage) decimal.Decimal {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	v, err := decimal.NewFromString(s)
	if err != nil {
		v = decimal.Zero
	}
	canonical, err := decimal.NewFromString(v.String())
	if err != nil {
		return v
	}
	return canonical
}

// ToOrderRecord maps an order into the cached order summary.
func ToOrderRecord(o *Order, now time.Time) domain.OrderRecord {
	rec := domain.OrderRecord{UpdatedAt: now, ItemIDs: []string{}}
	if o == nil {
		return rec
	}

	rec.ID = strconv.FormatInt(o.ID, 10)
	rec.Status = o.Status
	rec.TotalAmount = parseDecimal(o.TotalAmount)
	rec.Currency = o.CurrencyID
	rec.BuyerID = o.Buyer.ID
	rec.DateCreated = o.DateCreated
	for i := range o.OrderItems {
		if id := o.OrderItems[i].Item.ID; id != "" {
			rec.ItemIDs = append(rec.ItemIDs, id)
		}
	}
	return rec
}

package meli

import (
	"encoding/json"
	"time"
)

// Item is a listing as returned by the items and multi-get endpoints.
type Item struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Price             json.RawMessage `json:"price,omitempty"`
	CurrencyID        string          `json:"currency_id"`
	Status            string          `json:"status"`
	Condition         string          `json:"condition"`
	AvailableQuantity int             `json:"available_quantity"`
	Thumbnail         string          `json:"thumbnail"`
	SecureThumbnail   string          `json:"secure_thumbnail"`
	Pictures          []Picture       `json:"pictures,omitempty"`
	Permalink         string          `json:"permalink"`
	Shipping          *ItemShipping   `json:"shipping,omitempty"`
	Attributes        []Attribute     `json:"attributes,omitempty"`
}

// Picture is one listing image.
type Picture struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// ItemShipping holds the shipping terms of a listing.
type ItemShipping struct {
	Mode         string `json:"mode"`
	FreeShipping bool   `json:"free_shipping"`
	LocalPickUp  bool   `json:"local_pick_up"`
	LogisticType string `json:"logistic_type"`
}

// Attribute is a technical attribute of a listing (author, ISBN, ...).
type Attribute struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	ValueName   string           `json:"value_name"`
	ValueStruct *ValueStruct     `json:"value_struct,omitempty"`
	Values      []AttributeValue `json:"values,omitempty"`
}

// ValueStruct is a numeric attribute value with its unit.
type ValueStruct struct {
	Number *float64 `json:"number"`
	Unit   string   `json:"unit"`
}

// AttributeValue is one enumerated attribute value.
type AttributeValue struct {
	Name string `json:"name"`
}

// MultiGetResult is one entry of a multi-get response. Body is only a
// listing when Code is 200.
type MultiGetResult struct {
	Code int             `json:"code"`
	Body json.RawMessage `json:"body"`
}

// Order is the subset of an order used for the order cache.
type Order struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	TotalAmount json.RawMessage `json:"total_amount,omitempty"`
	CurrencyID  string          `json:"currency_id"`
	DateCreated time.Time       `json:"date_created"`
	Buyer       struct {
		ID int64 `json:"id"`
	} `json:"buyer"`
	OrderItems []struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	} `json:"order_items"`
}

// User is the authenticated account returned by users/me.
type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type searchAPIResponse struct {
	Results []string `json:"results"`
	Paging  struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"paging"`
	ScrollID string `json:"scroll_id"`
}

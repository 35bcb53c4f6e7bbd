package meli_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

func floatPtr(f float64) *float64 { return &f }

func completeItem() meli.Item {
	return meli.Item{
		ID:                "MLU123",
		Title:             "Rayuela - Julio Cortázar",
		Price:             json.RawMessage(`890`),
		CurrencyID:        "UYU",
		Status:            "active",
		Condition:         "new",
		AvailableQuantity: 3,
		Thumbnail:         "http://http2.mlstatic.com/D_123-I.jpg",
		SecureThumbnail:   "https://http2.mlstatic.com/D_123-I.jpg",
		Pictures: []meli.Picture{
			{ID: "p1", URL: "http://http2.mlstatic.com/D_123-O.jpg", SecureURL: "https://http2.mlstatic.com/D_123-O.jpg"},
			{ID: "p2", URL: "http://http2.mlstatic.com/D_456-O.jpg"},
		},
		Permalink: "https://articulo.mercadolibre.com.uy/MLU-123",
		Shipping: &meli.ItemShipping{
			Mode:         "me2",
			FreeShipping: true,
			LogisticType: "drop_off",
		},
		Attributes: []meli.Attribute{
			{ID: "AUTHOR", Name: "Autor", ValueName: "Julio Cortázar"},
			{ID: "GTIN", Name: "ISBN", ValueName: "9788437604572"},
			{ID: "PUBLISHER", Name: "Editorial", ValueName: "Cátedra"},
		},
	}
}

func TestToListingDetail(t *testing.T) {
	t.Parallel()

	item := completeItem()
	got := meli.ToListingDetail(&item)

	assert.Equal(t, "MLU123", got.ID)
	assert.Equal(t, "Rayuela - Julio Cortázar", got.Title)
	assert.True(t, decimal.NewFromInt(890).Equal(got.Price))
	assert.Equal(t, "UYU", got.Currency)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, "new", got.Condition)
	assert.Equal(t, 3, got.AvailableQuantity)
	assert.Equal(t, "http://http2.mlstatic.com/D_123-I.jpg", got.ThumbnailURL)
	assert.Equal(t, "https://http2.mlstatic.com/D_123-O.jpg", got.ImageURL)
	assert.Equal(t, "https://articulo.mercadolibre.com.uy/MLU-123", got.Permalink)
	assert.Equal(t, domain.Shipping{Mode: "me2", FreeShipping: true, LogisticType: "drop_off"}, got.Shipping)
	assert.Equal(t, map[string]string{
		"Autor":     "Julio Cortázar",
		"ISBN":      "9788437604572",
		"Editorial": "Cátedra",
	}, got.Attributes)
}

func TestToListingDetail_Image(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item meli.Item
		want string
	}{
		{
			name: "first picture secure url",
			item: meli.Item{Pictures: []meli.Picture{{URL: "http://a/1.jpg", SecureURL: "https://a/1.jpg"}}},
			want: "https://a/1.jpg",
		},
		{
			name: "first picture plain url",
			item: meli.Item{Pictures: []meli.Picture{{URL: "http://a/1.jpg"}, {SecureURL: "https://a/2.jpg"}}},
			want: "http://a/1.jpg",
		},
		{
			name: "no pictures falls back to secure thumbnail",
			item: meli.Item{Thumbnail: "http://a/t.jpg", SecureThumbnail: "https://a/t.jpg"},
			want: "https://a/t.jpg",
		},
		{
			name: "empty picture falls back to thumbnail",
			item: meli.Item{Pictures: []meli.Picture{{}}, Thumbnail: "http://a/t.jpg"},
			want: "http://a/t.jpg",
		},
		{
			name: "nothing available",
			item: meli.Item{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := meli.ToListingDetail(&tt.item)
			assert.Equal(t, tt.want, got.ImageURL)
		})
	}
}

func TestToListingDetail_Attributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs []meli.Attribute
		want  map[string]string
	}{
		{
			name:  "value name preferred",
			attrs: []meli.Attribute{{Name: "Autor", ValueName: "Borges", Values: []meli.AttributeValue{{Name: "Otro"}}}},
			want:  map[string]string{"Autor": "Borges"},
		},
		{
			name: "value struct number",
			attrs: []meli.Attribute{{
				Name:        "Cantidad de páginas",
				ValueStruct: &meli.ValueStruct{Number: floatPtr(352), Unit: "páginas"},
			}},
			want: map[string]string{"Cantidad de páginas": "352"},
		},
		{
			name: "value struct unit only",
			attrs: []meli.Attribute{{
				Name:        "Peso",
				ValueStruct: &meli.ValueStruct{Unit: "g"},
			}},
			want: map[string]string{"Peso": "g"},
		},
		{
			name:  "first enumerated value",
			attrs: []meli.Attribute{{Name: "Idioma", Values: []meli.AttributeValue{{Name: "Español"}, {Name: "Inglés"}}}},
			want:  map[string]string{"Idioma": "Español"},
		},
		{
			name:  "no value maps to empty string",
			attrs: []meli.Attribute{{Name: "Saga"}},
			want:  map[string]string{"Saga": ""},
		},
		{
			name: "later duplicate wins",
			attrs: []meli.Attribute{
				{Name: "ISBN", ValueName: "111"},
				{Name: "ISBN", ValueName: "222"},
			},
			want: map[string]string{"ISBN": "222"},
		},
		{
			name: "id used when name is missing, nameless and idless skipped",
			attrs: []meli.Attribute{
				{ID: "GTIN", ValueName: "9780123456789"},
				{ValueName: "orphan"},
			},
			want: map[string]string{"GTIN": "9780123456789"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := meli.ToListingDetail(&meli.Item{Attributes: tt.attrs})
			assert.Equal(t, tt.want, got.Attributes)
		})
	}
}

func TestToListingDetail_Total(t *testing.T) {
	t.Parallel()

	payloads := []string{
		`{}`,
		`{"id":"MLU1","price":null,"shipping":null,"pictures":null,"attributes":null}`,
		`{"id":"MLU2","price":"12.5","available_quantity":-4}`,
		`{"id":"MLU3","price":"not a number","status":"under_review"}`,
		`{"id":"MLU4","price":{"amount":10},"attributes":[{"value_struct":null,"values":[]}]}`,
		`{"id":"MLU5","attributes":[{"name":"Peso","value_struct":{"number":null,"unit":""}}]}`,
	}

	for _, p := range payloads {
		var item meli.Item
		require.NoError(t, json.Unmarshal([]byte(p), &item), p)

		assert.NotPanics(t, func() {
			d := meli.ToListingDetail(&item)
			assert.NotNil(t, d.Attributes)
			assert.GreaterOrEqual(t, d.AvailableQuantity, 0)
		}, p)
	}

	assert.NotPanics(t, func() {
		d := meli.ToListingDetail(nil)
		assert.Empty(t, d.ID)
		assert.NotNil(t, d.Attributes)
	})
}

func TestToListingDetail_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "integer", raw: `1500`, want: "1500"},
		{name: "fraction", raw: `12.5`, want: "12.5"},
		{name: "quoted", raw: `"99.90"`, want: "99.9"},
		{name: "null", raw: `null`, want: "0"},
		{name: "missing", raw: ``, want: "0"},
		{name: "garbage", raw: `{"a":1}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := meli.ToListingDetail(&meli.Item{Price: json.RawMessage(tt.raw)})
			assert.Equal(t, tt.want, got.Price.String())
		})
	}
}

func TestDecodeItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		checkFunc func(t *testing.T, got domain.ListingDetail)
	}{
		{
			name: "well formed",
			body: `{"id":"MLU1","title":"Ficciones","available_quantity":2}`,
			checkFunc: func(t *testing.T, got domain.ListingDetail) {
				t.Helper()
				assert.Equal(t, "Ficciones", got.Title)
				assert.Equal(t, 2, got.AvailableQuantity)
			},
		},
		{
			name: "float quantity falls back to zero",
			body: `{"id":"MLU2","title":"Rayuela","available_quantity":1.0,"status":"active"}`,
			checkFunc: func(t *testing.T, got domain.ListingDetail) {
				t.Helper()
				assert.Equal(t, "MLU2", got.ID)
				assert.Equal(t, "Rayuela", got.Title)
				assert.Equal(t, domain.StatusActive, got.Status)
				assert.Zero(t, got.AvailableQuantity)
			},
		},
		{
			name: "string number in value struct keeps other attributes",
			body: `{"id":"MLU3","title":"Pedro Páramo","attributes":[
				{"id":"PAGES","name":"Páginas","value_struct":{"number":"12","unit":"p"}},
				{"id":"AUTHOR","name":"Autor","value_name":"Juan Rulfo"}]}`,
			checkFunc: func(t *testing.T, got domain.ListingDetail) {
				t.Helper()
				assert.Equal(t, "Pedro Páramo", got.Title)
				assert.Equal(t, "Juan Rulfo", got.Attributes["Autor"])
			},
		},
		{
			name:    "missing id",
			body:    `{"title":"Sin id"}`,
			wantErr: true,
		},
		{
			name:    "mistyped id",
			body:    `{"id":123,"title":"Id numérico"}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			body:    `["MLU4"]`,
			wantErr: true,
		},
		{
			name:    "malformed",
			body:    `{"id":"MLU5"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := meli.DecodeItem([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, meli.ToListingDetail(item))
		})
	}
}

func TestToOrderRecord(t *testing.T) {
	t.Parallel()

	var order meli.Order
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 2000001234,
		"status": "paid",
		"total_amount": 1780,
		"currency_id": "UYU",
		"date_created": "2025-03-01T10:00:00.000-03:00",
		"buyer": {"id": 42},
		"order_items": [{"item": {"id": "MLU123"}}, {"item": {"id": ""}}]
	}`), &order))

	rec := meli.ToOrderRecord(&order, order.DateCreated)
	assert.Equal(t, "2000001234", rec.ID)
	assert.Equal(t, "paid", rec.Status)
	assert.Equal(t, "1780", rec.TotalAmount.String())
	assert.Equal(t, int64(42), rec.BuyerID)
	assert.Equal(t, []string{"MLU123"}, rec.ItemIDs)

	empty := meli.ToOrderRecord(nil, order.DateCreated)
	assert.Empty(t, empty.ID)
	assert.NotNil(t, empty.ItemIDs)
}

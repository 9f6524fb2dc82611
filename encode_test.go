package restaurant

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/etnz/restaurant/date"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeOrders(t *testing.T) {
	ledger := NewOrderLedger()
	ledger.Place([]MenuItem{tea, coffee}, time.Date(2024, time.January, 1, 12, 30, 0, 0, time.UTC), "USD")
	ledger.Place(nil, time.Date(2024, time.January, 1, 13, 0, 0, 0, time.UTC), "USD")
	ledger.Cancel(2)

	var b bytes.Buffer
	if err := EncodeOrders(&b, ledger); err != nil {
		t.Fatalf("EncodeOrders() returned an unexpected error: %v", err)
	}

	want := `{"id":1,"placedAt":"2024-01-01T12:30:00Z","status":"Active","currency":"USD","total":3.5,"lines":[{"id":1,"name":"Tea","price":1.5},{"id":2,"name":"Coffee","price":2}]}
{"id":2,"placedAt":"2024-01-01T13:00:00Z","status":"Cancelled","currency":"USD","total":0,"lines":[]}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeOrders() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDecodeOrders_RoundTrip(t *testing.T) {
	ledger := NewOrderLedger()
	ledger.Place([]MenuItem{tea, coffee}, time.Date(2024, time.January, 1, 12, 30, 0, 0, time.UTC), "USD")
	ledger.Place([]MenuItem{tea}, time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC), "USD")
	ledger.Cancel(1)

	var b bytes.Buffer
	if err := EncodeOrders(&b, ledger); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeOrders(&b)
	if err != nil {
		t.Fatalf("DecodeOrders() returned an unexpected error: %v", err)
	}

	if diff := cmp.Diff(ledger.Orders(), got.Orders(), cmp.AllowUnexported(Order{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// The id counter is not restarted at 1 on reload: ids would collide with the
// persisted orders otherwise.
func TestDecodeOrders_ReseedsIDs(t *testing.T) {
	snapshot := `{"id":3,"placedAt":"2024-01-01T12:30:00Z","status":"Active","currency":"USD","total":1.5,"lines":[{"id":1,"name":"Tea","price":1.5}]}
{"id":7,"placedAt":"2024-01-01T13:00:00Z","status":"Cancelled","currency":"USD","total":0,"lines":[]}
{"id":5,"placedAt":"2024-01-01T14:00:00Z","status":"Active","currency":"USD","total":0,"lines":[]}
`
	ledger, err := DecodeOrders(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("DecodeOrders() returned an unexpected error: %v", err)
	}
	if got := ledger.NextID(); got != 8 {
		t.Errorf("NextID() = %d, want 8", got)
	}
	if o := ledger.Place(nil, time.Now(), "USD"); o.ID() != 8 {
		t.Errorf("placed order id = %d, want 8", o.ID())
	}
}

func TestDecodeOrders_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot string
	}{
		{name: "not json", snapshot: "garbage\n"},
		{name: "bad status", snapshot: `{"id":1,"placedAt":"2024-01-01T12:30:00Z","status":"Lost","total":0,"lines":[]}`},
		{name: "missing id", snapshot: `{"placedAt":"2024-01-01T12:30:00Z","status":"Active","total":0,"lines":[]}`},
		{name: "duplicate id", snapshot: `{"id":1,"placedAt":"2024-01-01T12:30:00Z","status":"Active","total":0,"lines":[]}
{"id":1,"placedAt":"2024-01-01T12:30:00Z","status":"Active","total":0,"lines":[]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeOrders(strings.NewReader(tc.snapshot)); err == nil {
				t.Errorf("DecodeOrders() expected an error")
			}
		})
	}
}

func TestCollections_RoundTrip(t *testing.T) {
	ledger := NewCollectionLedger(
		CollectionReport{Date: date.New(2024, time.January, 1), Total: USD(120.5)},
		CollectionReport{Date: date.New(2024, time.January, 2), Total: USD(0)},
	)
	var b bytes.Buffer
	if err := EncodeCollections(&b, ledger); err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2024-01-01","amount":120.5,"currency":"USD"}
{"date":"2024-01-02","amount":0,"currency":"USD"}
`
	if b.String() != want {
		t.Errorf("EncodeCollections() = \n%s\nwant\n%s", b.String(), want)
	}
	got, err := DecodeCollections(&b)
	if err != nil {
		t.Fatalf("DecodeCollections() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(ledger.Reports(), got.Reports()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// memStore is an in memory Store.
type memStore map[string][]byte

func (m memStore) Read(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m memStore) Write(name string, data []byte) error {
	m[name] = bytes.Clone(data)
	return nil
}

func TestLoadOrders(t *testing.T) {
	t.Run("missing snapshot", func(t *testing.T) {
		ledger, err := LoadOrders(memStore{})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("LoadOrders() error = %v, want fs.ErrNotExist", err)
		}
		if ledger == nil || ledger.Len() != 0 || ledger.NextID() != 1 {
			t.Errorf("LoadOrders() should return an empty ledger")
		}
	})
	t.Run("corrupt snapshot", func(t *testing.T) {
		store := memStore{OrdersSnapshot: []byte(`{"id":1,"placedAt":"2024-01-01T12:30:00Z","status":"Active","total":0,"lines":[]}
not json
`)}
		ledger, err := LoadOrders(store)
		if err == nil {
			t.Error("LoadOrders() expected an error")
		}
		if ledger == nil || ledger.Len() != 0 {
			t.Errorf("LoadOrders() should return an empty ledger on a corrupt snapshot")
		}
	})
	t.Run("saved then loaded", func(t *testing.T) {
		store := memStore{}
		ledger := NewOrderLedger()
		ledger.Place([]MenuItem{tea}, time.Date(2024, time.January, 1, 12, 30, 0, 0, time.UTC), "USD")
		if err := SaveOrders(store, ledger); err != nil {
			t.Fatal(err)
		}
		got, err := LoadOrders(store)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ledger.Orders(), got.Orders(), cmp.AllowUnexported(Order{})); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLoadCollections_Missing(t *testing.T) {
	ledger, err := LoadCollections(memStore{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadCollections() error = %v, want fs.ErrNotExist", err)
	}
	if ledger == nil || ledger.Len() != 0 {
		t.Errorf("LoadCollections() should return an empty ledger")
	}
}

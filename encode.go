package restaurant

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeOrders decodes a JSONL stream of orders. Blank lines are skipped.
func DecodeOrders(r io.Reader) (*OrderLedger, error) {
	ledger := NewOrderLedger()
	err := decodeLines(r, func(line []byte) error {
		o := new(Order)
		if err := json.Unmarshal(line, o); err != nil {
			return err
		}
		if ledger.Find(o.id) != nil {
			return fmt.Errorf("duplicate order id %d", o.id)
		}
		ledger.append(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeOrders writes every order, cancelled ones included, one JSON object per line.
func EncodeOrders(w io.Writer, ledger *OrderLedger) error {
	for _, o := range ledger.orders {
		if err := encodeLine(w, o); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCollections decodes a JSONL stream of collection reports.
func DecodeCollections(r io.Reader) (*CollectionLedger, error) {
	ledger := NewCollectionLedger()
	err := decodeLines(r, func(line []byte) error {
		var report CollectionReport
		if err := json.Unmarshal(line, &report); err != nil {
			return err
		}
		ledger.reports = append(ledger.reports, report)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeCollections writes every report, one JSON object per line.
func EncodeCollections(w io.Writer, ledger *CollectionLedger) error {
	for _, r := range ledger.reports {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

func decodeLines(r io.Reader, decode func([]byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// encodeLine marshals v to JSON and writes it followed by a newline.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// LoadOrders reads the order snapshot from the store.
//
// The returned ledger is never nil: when the snapshot is missing or cannot be
// decoded it is empty, and the error says why.
func LoadOrders(s Store) (*OrderLedger, error) {
	data, err := s.Read(OrdersSnapshot)
	if err != nil {
		return NewOrderLedger(), err
	}
	ledger, err := DecodeOrders(bytes.NewReader(data))
	if err != nil {
		return NewOrderLedger(), fmt.Errorf("could not decode order snapshot: %w", err)
	}
	return ledger, nil
}

// SaveOrders replaces the order snapshot with the whole ledger.
func SaveOrders(s Store, ledger *OrderLedger) error {
	var b bytes.Buffer
	if err := EncodeOrders(&b, ledger); err != nil {
		return err
	}
	return s.Write(OrdersSnapshot, b.Bytes())
}

// LoadCollections reads the collection snapshot from the store. Like
// LoadOrders it always returns a usable ledger.
func LoadCollections(s Store) (*CollectionLedger, error) {
	data, err := s.Read(CollectionsSnapshot)
	if err != nil {
		return NewCollectionLedger(), err
	}
	ledger, err := DecodeCollections(bytes.NewReader(data))
	if err != nil {
		return NewCollectionLedger(), fmt.Errorf("could not decode collection snapshot: %w", err)
	}
	return ledger, nil
}

// SaveCollections replaces the collection snapshot with the whole ledger.
func SaveCollections(s Store, ledger *CollectionLedger) error {
	var b bytes.Buffer
	if err := EncodeCollections(&b, ledger); err != nil {
		return err
	}
	return s.Write(CollectionsSnapshot, b.Bytes())
}

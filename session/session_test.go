package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/date"
)

// newTestSession opens a restaurant in a temp folder with a two item menu and
// returns a session fed with the given input lines.
func newTestSession(t *testing.T, input ...string) (*Session, *bytes.Buffer, restaurant.FileStore) {
	t.Helper()
	dir := t.TempDir()
	menuFile := filepath.Join(dir, "menu.txt")
	if err := os.WriteFile(menuFile, []byte("1,Tea,1.50\n2,Coffee,2.00\n"), 0644); err != nil {
		t.Fatal(err)
	}
	store := restaurant.FileStore{Dir: dir}
	r := restaurant.Open(restaurant.Options{MenuFile: menuFile, Store: store})
	r.Now = func() time.Time { return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC) }

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	return New(r, in, &out), &out, store
}

func TestSession_Scenario(t *testing.T) {
	s, out, store := newTestSession(t,
		"1", "1,2",
		"2", "1",
		"1", "1,9",
		"4",
	)
	if err := s.Run(); err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}
	if s.State() != Terminated {
		t.Errorf("State() = %v, want Terminated", s.State())
	}

	got := out.String()
	for _, want := range []string{
		"  1. Tea $1.50",
		"Order placed successfully!",
		"Order #1 placed 2024-01-01 12:00:00: Tea, Coffee, total $3.50 (Active)",
		"Order cancelled successfully!",
		"Order #2 placed 2024-01-01 12:00:00: Tea, total $1.50 (Active)",
		"Exiting the application. Thank you!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}

	orders, err := restaurant.LoadOrders(store)
	if err != nil {
		t.Fatalf("LoadOrders() returned an unexpected error: %v", err)
	}
	if orders.Len() != 2 || orders.Find(1).Status() != restaurant.Cancelled || orders.Find(2).Status() != restaurant.Active {
		t.Errorf("saved ledger does not match the session")
	}
	if _, err := store.Read(restaurant.CollectionsSnapshot); err != nil {
		t.Errorf("collection snapshot was not written on exit: %v", err)
	}
}

func TestSession_Messages(t *testing.T) {
	testCases := []struct {
		name  string
		input []string
		want  string
	}{
		{name: "invalid choice", input: []string{"7", "4"}, want: "Invalid choice. Please enter a valid option."},
		{name: "non numeric choice", input: []string{"place", "4"}, want: "Invalid choice. Please enter a valid option."},
		{name: "cancel missing order", input: []string{"2", "5", "4"}, want: "Order not found."},
		{name: "cancel with bad id", input: []string{"2", "five", "4"}, want: "Invalid order ID"},
		{name: "bad item list", input: []string{"1", "tea", "4"}, want: "Invalid item list"},
		{name: "report bad date", input: []string{"3", "01/01/2024", "4"}, want: "Invalid date format. Please enter the date in yyyy-MM-dd format."},
		{name: "report missing", input: []string{"3", "2024-01-01", "4"}, want: "No collection report available for the specified date."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out, _ := newTestSession(t, tc.input...)
			if err := s.Run(); err != nil {
				t.Fatalf("Run() returned an unexpected error: %v", err)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Errorf("output is missing %q:\n%s", tc.want, out.String())
			}
			if s.State() != Terminated {
				t.Errorf("State() = %v, want Terminated", s.State())
			}
		})
	}
}

func TestSession_ReportFound(t *testing.T) {
	s, out, _ := newTestSession(t, "3", "2024-01-01", "4")
	s.Restaurant.Collections.Record(restaurant.CollectionReport{
		Date:  date.MustParse("2024-01-01"),
		Total: restaurant.M(99.5, "USD"),
	})
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if want := "Collection of 2024-01-01: $99.50"; !strings.Contains(out.String(), want) {
		t.Errorf("output is missing %q:\n%s", want, out.String())
	}
}

func TestSession_EndOfInputSaves(t *testing.T) {
	s, _, store := newTestSession(t, "1", "2")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}
	if s.State() != Terminated {
		t.Errorf("State() = %v, want Terminated", s.State())
	}
	orders, err := restaurant.LoadOrders(store)
	if err != nil || orders.Len() != 1 {
		t.Errorf("order placed before end of input was not saved: %v", err)
	}
}

func TestSession_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	r := restaurant.Open(restaurant.Options{MenuFile: filepath.Join(dir, "menu.txt"), Store: restaurant.FileStore{Dir: dir}})
	s := New(r, strings.NewReader(""), &out)
	if err := s.Run(); err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "1. Place Order") {
		t.Errorf("main menu was not printed:\n%s", out.String())
	}
}

func TestSession_EndOfInputInOperation(t *testing.T) {
	testCases := []struct {
		choice string
		prompt string
	}{
		{choice: "1", prompt: "Enter the menu item IDs (comma-separated) for the order:\n"},
		{choice: "2", prompt: "Enter the order ID to cancel:\n"},
		{choice: "3", prompt: "Enter the date to view the collection report (yyyy-MM-dd):\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.choice, func(t *testing.T) {
			s, out, _ := newTestSession(t, tc.choice)
			if err := s.Run(); err != nil {
				t.Fatalf("Run() returned an unexpected error: %v", err)
			}
			if n := strings.Count(out.String(), mainMenu); n != 1 {
				t.Errorf("main menu printed %d times, want 1:\n%s", n, out.String())
			}
			if want := tc.prompt + "Exiting the application. Thank you!\n"; !strings.HasSuffix(out.String(), want) {
				t.Errorf("output should end with %q:\n%s", want, out.String())
			}
		})
	}
}

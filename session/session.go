// Package session implements the interactive ordering loop.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/renderer"
)

// State of a session.
type State int

const (
	Running State = iota
	Terminated
)

// Menu choices.
const (
	ChoicePlace  = 1
	ChoiceCancel = 2
	ChoiceReport = 3
	ChoiceExit   = 4
)

// dateHint is how the expected date format is shown to users.
const dateHint = "yyyy-MM-dd"

const mainMenu = `1. Place Order
2. Cancel Order
3. View Daily Collection Report
4. Exit
`

// Session reads choices from In and writes prompts and results to Out.
type Session struct {
	Restaurant *restaurant.Restaurant
	In         io.Reader
	Out        io.Writer

	state   State
	scanner *bufio.Scanner
}

// New creates a running session.
func New(r *restaurant.Restaurant, in io.Reader, out io.Writer) *Session {
	return &Session{Restaurant: r, In: in, Out: out}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Run loops until the user exits or the input ends, then saves both ledgers.
// The returned error only reports a failure to read input or to save.
func (s *Session) Run() error {
	s.scanner = bufio.NewScanner(s.In)
	s.state = Running
	for s.state == Running {
		fmt.Fprint(s.Out, mainMenu)
		line, ok := s.readLine()
		if !ok {
			break
		}
		s.dispatch(line)
	}
	return errors.Join(s.scanner.Err(), s.terminate())
}

// dispatch runs one choice.
func (s *Session) dispatch(line string) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		choice = 0
	}
	switch choice {
	case ChoicePlace:
		s.placeOrder()
	case ChoiceCancel:
		s.cancelOrder()
	case ChoiceReport:
		s.viewReport()
	case ChoiceExit:
		s.state = Terminated
	default:
		fmt.Fprintln(s.Out, "Invalid choice. Please enter a valid option.")
	}
}

func (s *Session) terminate() error {
	s.state = Terminated
	if err := s.Restaurant.Save(); err != nil {
		fmt.Fprintf(s.Out, "Error saving data: %v\n", err)
		return err
	}
	fmt.Fprintln(s.Out, "Exiting the application. Thank you!")
	return nil
}

// readLine reads the next line. The end of input terminates the session.
func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		s.state = Terminated
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) placeOrder() {
	fmt.Fprintln(s.Out, "Menu:")
	for _, item := range s.Restaurant.Catalog.Items() {
		fmt.Fprintln(s.Out, renderer.MenuItem(item))
	}
	fmt.Fprintln(s.Out, "Enter the menu item IDs (comma-separated) for the order:")
	line, ok := s.readLine()
	if !ok {
		return
	}
	o, err := s.Restaurant.PlaceOrder(line)
	switch {
	case errors.Is(err, restaurant.ErrUnknownItem):
		fmt.Fprintf(s.Out, "Order rejected: %v\n", err)
	case err != nil:
		fmt.Fprintf(s.Out, "Invalid item list: %v\n", err)
	default:
		fmt.Fprintln(s.Out, "Order placed successfully!")
		fmt.Fprintln(s.Out, renderer.Order(o))
	}
}

func (s *Session) cancelOrder() {
	fmt.Fprintln(s.Out, "Enter the order ID to cancel:")
	line, ok := s.readLine()
	if !ok {
		return
	}
	id, err := restaurant.ParseOrderID(line)
	if err != nil {
		fmt.Fprintf(s.Out, "Invalid order ID: %v\n", err)
		return
	}
	if _, found := s.Restaurant.CancelOrder(id); !found {
		fmt.Fprintln(s.Out, "Order not found.")
		return
	}
	fmt.Fprintln(s.Out, "Order cancelled successfully!")
}

func (s *Session) viewReport() {
	fmt.Fprintf(s.Out, "Enter the date to view the collection report (%s):\n", dateHint)
	line, ok := s.readLine()
	if !ok {
		return
	}
	report, found, err := s.Restaurant.CollectionReport(line)
	switch {
	case err != nil:
		fmt.Fprintf(s.Out, "Invalid date format. Please enter the date in %s format.\n", dateHint)
	case !found:
		fmt.Fprintln(s.Out, "No collection report available for the specified date.")
	default:
		fmt.Fprintln(s.Out, renderer.CollectionReport(report))
	}
}

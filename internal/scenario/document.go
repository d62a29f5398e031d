// Package scenario reads, writes, and edits scenario documents.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/runway-dev/runway/internal/calendar"
	"github.com/runway-dev/runway/internal/model"
	"github.com/runway-dev/runway/internal/projector"
)

// Document is the on-disk (scenario.yaml) and over-the-wire (JSON) form of a
// scenario and its four item lists.
type Document struct {
	Title             string                   `yaml:"title,omitempty" json:"title,omitempty"`
	StartDate         calendar.Date            `yaml:"start_date" json:"start_date"`
	EndDate           calendar.Date            `yaml:"end_date" json:"end_date"`
	StartingBalance   decimal.Decimal          `yaml:"starting_balance" json:"starting_balance"`
	BudgetItems       []model.BudgetItem       `yaml:"budget_items,omitempty" json:"budget_items"`
	IncomeItems       []model.IncomeItem       `yaml:"income_items,omitempty" json:"income_items"`
	OneTimeItems      []model.OneTimeItem      `yaml:"one_time_items,omitempty" json:"one_time_items"`
	AggregateExpenses []model.AggregateExpense `yaml:"aggregate_expenses,omitempty" json:"aggregate_expenses"`
}

// Scenario returns the date range and opening balance.
func (d *Document) Scenario() model.Scenario {
	return model.Scenario{
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		StartingBalance: d.StartingBalance,
	}
}

// Input returns a projector input holding copies of the item lists, so later
// edits to d do not reach a projection in progress.
func (d *Document) Input() projector.Input {
	return projector.Input{
		Scenario:  d.Scenario(),
		Budget:    append([]model.BudgetItem(nil), d.BudgetItems...),
		Income:    append([]model.IncomeItem(nil), d.IncomeItems...),
		OneTime:   append([]model.OneTimeItem(nil), d.OneTimeItems...),
		Aggregate: append([]model.AggregateExpense(nil), d.AggregateExpenses...),
	}
}

// Decode reads a YAML scenario document. Malformed dates fail with an error
// wrapping calendar.ErrInvalidDate.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	return enc.Close()
}

// Load reads a scenario.yaml file from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Save writes doc to a YAML file.
func Save(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

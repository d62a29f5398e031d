package scenario

import (
	"fmt"
	"strings"

	"github.com/runway-dev/runway/internal/model"
	"github.com/runway-dev/runway/internal/projector"
)

// Kind names one of the four item lists.
type Kind string

const (
	KindBudget    Kind = "budget"
	KindIncome    Kind = "income"
	KindOneTime   Kind = "onetime"
	KindAggregate Kind = "aggregate"
)

// Kinds lists every item kind in projection order.
var Kinds = []Kind{KindBudget, KindIncome, KindOneTime, KindAggregate}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown item kind %q (want budget, income, onetime, or aggregate)", s)
}

// Service edits the item lists of a scenario document in memory.
type Service struct {
	doc *Document
}

// NewService wraps doc. Edits are applied to doc directly.
func NewService(doc *Document) *Service {
	return &Service{doc: doc}
}

// Document returns the document being edited.
func (s *Service) Document() *Document {
	return s.doc
}

// AddBudget appends a budget item and returns its index.
func (s *Service) AddBudget(item model.BudgetItem) int {
	s.doc.BudgetItems = append(s.doc.BudgetItems, item)
	return len(s.doc.BudgetItems) - 1
}

// AddIncome appends an income item and returns its index. An empty frequency
// defaults to biweekly.
func (s *Service) AddIncome(item model.IncomeItem) int {
	if item.Frequency == "" {
		item.Frequency = model.FrequencyBiweekly
	}
	s.doc.IncomeItems = append(s.doc.IncomeItems, item)
	return len(s.doc.IncomeItems) - 1
}

// AddOneTime appends a one-time item and returns its index. An empty
// direction defaults to expense.
func (s *Service) AddOneTime(item model.OneTimeItem) int {
	if item.Direction == "" {
		item.Direction = model.DirectionExpense
	}
	s.doc.OneTimeItems = append(s.doc.OneTimeItems, item)
	return len(s.doc.OneTimeItems) - 1
}

// AddAggregate appends an aggregate expense and returns its index.
func (s *Service) AddAggregate(item model.AggregateExpense) int {
	s.doc.AggregateExpenses = append(s.doc.AggregateExpenses, item)
	return len(s.doc.AggregateExpenses) - 1
}

// Count returns the number of items of a kind.
func (s *Service) Count(kind Kind) int {
	switch kind {
	case KindBudget:
		return len(s.doc.BudgetItems)
	case KindIncome:
		return len(s.doc.IncomeItems)
	case KindOneTime:
		return len(s.doc.OneTimeItems)
	case KindAggregate:
		return len(s.doc.AggregateExpenses)
	default:
		return 0
	}
}

// Remove deletes the item at index from the kind's list, keeping order.
func (s *Service) Remove(kind Kind, index int) error {
	if n := s.Count(kind); index < 0 || index >= n {
		return fmt.Errorf("no %s item at index %d (have %d)", kind, index, n)
	}
	switch kind {
	case KindBudget:
		s.doc.BudgetItems = removeAt(s.doc.BudgetItems, index)
	case KindIncome:
		s.doc.IncomeItems = removeAt(s.doc.IncomeItems, index)
	case KindOneTime:
		s.doc.OneTimeItems = removeAt(s.doc.OneTimeItems, index)
	case KindAggregate:
		s.doc.AggregateExpenses = removeAt(s.doc.AggregateExpenses, index)
	}
	return nil
}

// Snapshot returns a projector input that is unaffected by later edits.
func (s *Service) Snapshot() projector.Input {
	return s.doc.Input()
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

package ledger

import (
	"context"

	"github.com/eirikmo/fossbank/internal/model"
)

// In-memory repository fakes. They store copies so that, as with a real
// database, mutations only become visible through Update/Create.

type memCustomers struct {
	m      map[int64]model.Customer
	order  []int64
	nextID int64
}

func newMemCustomers() *memCustomers {
	return &memCustomers{m: make(map[int64]model.Customer)}
}

func (s *memCustomers) Create(_ context.Context, c *model.Customer) (int64, error) {
	s.nextID++
	cp := *c
	cp.ID = s.nextID
	s.m[cp.ID] = cp
	s.order = append(s.order, cp.ID)
	return cp.ID, nil
}

func (s *memCustomers) GetByID(_ context.Context, id int64) (*model.Customer, error) {
	c, ok := s.m[id]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	cp := c
	return &cp, nil
}

func (s *memCustomers) GetAll(_ context.Context) ([]model.Customer, error) {
	var out []model.Customer
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

func (s *memCustomers) Update(_ context.Context, c *model.Customer) error {
	if _, ok := s.m[c.ID]; !ok {
		return model.ErrCustomerNotFound
	}
	s.m[c.ID] = *c
	return nil
}

func (s *memCustomers) Delete(_ context.Context, id int64) error {
	if _, ok := s.m[id]; !ok {
		return model.ErrCustomerNotFound
	}
	delete(s.m, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type memAccounts struct {
	m      map[int64]model.Account
	order  []int64
	nextID int64

	errUpdate error // injected Update failure
}

func newMemAccounts() *memAccounts {
	return &memAccounts{m: make(map[int64]model.Account)}
}

func (s *memAccounts) Create(_ context.Context, a *model.Account) (int64, error) {
	s.nextID++
	cp := *a
	cp.ID = s.nextID
	s.m[cp.ID] = cp
	s.order = append(s.order, cp.ID)
	return cp.ID, nil
}

func (s *memAccounts) GetByID(_ context.Context, id int64) (*model.Account, error) {
	a, ok := s.m[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	cp := a
	return &cp, nil
}

func (s *memAccounts) GetAll(_ context.Context) ([]model.Account, error) {
	var out []model.Account
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

func (s *memAccounts) GetByCustomerID(_ context.Context, customerID int64) ([]model.Account, error) {
	var out []model.Account
	for _, id := range s.order {
		if s.m[id].CustomerID == customerID {
			out = append(out, s.m[id])
		}
	}
	return out, nil
}

func (s *memAccounts) Update(_ context.Context, a *model.Account) error {
	if s.errUpdate != nil {
		return s.errUpdate
	}
	if _, ok := s.m[a.ID]; !ok {
		return model.ErrAccountNotFound
	}
	s.m[a.ID] = *a
	return nil
}

func (s *memAccounts) Delete(_ context.Context, id int64) error {
	if _, ok := s.m[id]; !ok {
		return model.ErrAccountNotFound
	}
	delete(s.m, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type memTransactions struct {
	list   []model.Transaction
	nextID int64

	errCreate error // injected append failure
}

func newMemTransactions() *memTransactions {
	return &memTransactions{}
}

func (s *memTransactions) Create(_ context.Context, t *model.Transaction) (int64, error) {
	if s.errCreate != nil {
		return 0, s.errCreate
	}
	s.nextID++
	cp := *t
	cp.ID = s.nextID
	s.list = append(s.list, cp)
	return cp.ID, nil
}

func (s *memTransactions) GetByAccountID(_ context.Context, accountID int64) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range s.list {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memTransactions) GetAll(_ context.Context) ([]model.Transaction, error) {
	return append([]model.Transaction(nil), s.list...), nil
}

type memLoans struct {
	m      map[int64]model.Loan
	order  []int64
	nextID int64
}

func newMemLoans() *memLoans {
	return &memLoans{m: make(map[int64]model.Loan)}
}

func (s *memLoans) Create(_ context.Context, l *model.Loan) (int64, error) {
	s.nextID++
	cp := *l
	cp.ID = s.nextID
	s.m[cp.ID] = cp
	s.order = append(s.order, cp.ID)
	return cp.ID, nil
}

func (s *memLoans) GetByID(_ context.Context, id int64) (*model.Loan, error) {
	l, ok := s.m[id]
	if !ok {
		return nil, model.ErrLoanNotFound
	}
	cp := l
	return &cp, nil
}

func (s *memLoans) GetAll(_ context.Context) ([]model.Loan, error) {
	var out []model.Loan
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

func (s *memLoans) GetByCustomerID(_ context.Context, customerID int64) ([]model.Loan, error) {
	var out []model.Loan
	for _, id := range s.order {
		if s.m[id].CustomerID == customerID {
			out = append(out, s.m[id])
		}
	}
	return out, nil
}

func (s *memLoans) Update(_ context.Context, l *model.Loan) error {
	if _, ok := s.m[l.ID]; !ok {
		return model.ErrLoanNotFound
	}
	s.m[l.ID] = *l
	return nil
}

func (s *memLoans) Delete(_ context.Context, id int64) error {
	if _, ok := s.m[id]; !ok {
		return model.ErrLoanNotFound
	}
	delete(s.m, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type memPayments struct {
	list   []model.LoanPayment
	nextID int64

	errCreate error // injected append failure
}

func newMemPayments() *memPayments {
	return &memPayments{}
}

func (s *memPayments) Create(_ context.Context, p *model.LoanPayment) (int64, error) {
	if s.errCreate != nil {
		return 0, s.errCreate
	}
	s.nextID++
	cp := *p
	cp.ID = s.nextID
	s.list = append(s.list, cp)
	return cp.ID, nil
}

func (s *memPayments) GetByLoanID(_ context.Context, loanID int64) ([]model.LoanPayment, error) {
	var out []model.LoanPayment
	for _, p := range s.list {
		if p.LoanID == loanID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPayments) GetAll(_ context.Context) ([]model.LoanPayment, error) {
	return append([]model.LoanPayment(nil), s.list...), nil
}

// testBank wires a full in-memory ledger core with one registered customer
type testBank struct {
	customers    *memCustomers
	accounts     *memAccounts
	transactions *memTransactions
	loans        *memLoans
	payments     *memPayments

	accountLedger *AccountLedger
	loanLedger    *LoanLedger
	registry      *CustomerRegistry

	customerID int64
}

func newTestBank() *testBank {
	b := &testBank{
		customers:    newMemCustomers(),
		accounts:     newMemAccounts(),
		transactions: newMemTransactions(),
		loans:        newMemLoans(),
		payments:     newMemPayments(),
	}
	b.accountLedger = NewAccountLedger(b.accounts, b.transactions, b.customers)
	b.loanLedger = NewLoanLedger(b.loans, b.payments, b.customers)
	b.registry = NewCustomerRegistry(b.customers, b.accounts, b.loans)

	b.customerID, _ = b.customers.Create(context.Background(), &model.Customer{
		FullName: "Asta Holm",
		Email:    "asta@example.com",
	})
	return b
}

func (b *testBank) addAccount(balance, rate float64) int64 {
	id, _ := b.accounts.Create(context.Background(), &model.Account{
		CustomerID:   b.customerID,
		AccountType:  model.AccountTypeSavings,
		Balance:      balance,
		InterestRate: rate,
	})
	return id
}

func (b *testBank) addLoan(balance, rate float64) int64 {
	id, _ := b.loans.Create(context.Background(), &model.Loan{
		CustomerID:       b.customerID,
		LoanType:         model.LoanTypePersonal,
		AmountSanctioned: balance,
		Balance:          balance,
		InterestRate:     rate,
	})
	return id
}

package ledger

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/eirikmo/fossbank/internal/model"
)

// AccountLedger enforces the balance-mutation invariants and keeps Account
// and Transaction records consistent. Every successful balance change
// appends exactly one transaction.
//
// Persistence is the legacy two-step: the balance write commits first, then
// the audit record is appended. A failed append is reported as operation
// failure without reversing the balance write.
type AccountLedger struct {
	accounts     AccountRepository
	transactions TransactionRepository
	customers    CustomerRepository
	locks        *keyedMutex
}

// NewAccountLedger creates a new AccountLedger
func NewAccountLedger(accounts AccountRepository, transactions TransactionRepository, customers CustomerRepository) *AccountLedger {
	return &AccountLedger{
		accounts:     accounts,
		transactions: transactions,
		customers:    customers,
		locks:        newKeyedMutex(),
	}
}

// CreateAccount opens an account for an existing customer. The open date
// defaults to now when unset.
func (l *AccountLedger) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := l.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	accountType, _ := model.ParseAccountType(req.AccountType)

	openDate := time.Now()
	if req.OpenDate != nil {
		openDate = *req.OpenDate
	}

	account := &model.Account{
		CustomerID:   req.CustomerID,
		AccountType:  accountType,
		Balance:      req.InitialBalance,
		InterestRate: req.InterestRate,
		OpenDate:     openDate,
	}

	id, err := l.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = id

	return account, nil
}

// Deposit credits the account and appends a deposit transaction
func (l *AccountLedger) Deposit(ctx context.Context, accountID int64, amount float64) (*model.Account, error) {
	if amount <= 0 {
		return nil, model.ErrAmountNotPositive
	}

	unlock := l.locks.lock(accountID)
	defer unlock()

	return l.credit(ctx, accountID, amount, "Cash Deposit")
}

// Withdraw debits the account and appends a withdrawal transaction.
// There are no partial withdrawals: the full amount must be covered.
func (l *AccountLedger) Withdraw(ctx context.Context, accountID int64, amount float64) (*model.Account, error) {
	if amount <= 0 {
		return nil, model.ErrAmountNotPositive
	}

	unlock := l.locks.lock(accountID)
	defer unlock()

	return l.debit(ctx, accountID, amount)
}

// Transfer moves funds between two accounts as a withdrawal followed by a
// deposit. If the credit fails after the debit committed, the funds are not
// restored to the source account; the legacy system behaves the same way
// and callers treat the returned error as the signal to reconcile.
func (l *AccountLedger) Transfer(ctx context.Context, req model.TransferRequest) error {
	if req.Amount <= 0 {
		return model.ErrAmountNotPositive
	}

	unlock := l.locks.lockPair(req.FromAccountID, req.ToAccountID)
	defer unlock()

	if _, err := l.debit(ctx, req.FromAccountID, req.Amount); err != nil {
		return err
	}

	_, err := l.credit(ctx, req.ToAccountID, req.Amount, "Cash Deposit")
	return err
}

// ApplyInterest credits one round of simple interest on the current balance
// snapshot and logs it as a deposit transaction. Returns the interest amount.
func (l *AccountLedger) ApplyInterest(ctx context.Context, accountID int64) (float64, error) {
	unlock := l.locks.lock(accountID)
	defer unlock()

	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}

	rate := account.InterestRate
	if rate <= 0 {
		return 0, model.ErrInterestRateNotSet
	}

	interest := account.Balance * rate / 100
	if interest <= 0 {
		return 0, model.ErrNoInterestAccrued
	}

	account.Balance += interest
	if err := l.accounts.Update(ctx, account); err != nil {
		return 0, err
	}

	narration := fmt.Sprintf("Interest applied (%s%%)", formatRate(rate))
	if err := l.append(ctx, accountID, model.TransactionTypeDeposit, interest, narration); err != nil {
		return 0, err
	}

	return interest, nil
}

// ApplyInterestToAll credits interest on every account sequentially,
// continuing past per-account failures. Returns the number of accounts
// successfully credited.
func (l *AccountLedger) ApplyInterestToAll(ctx context.Context) (int, error) {
	accounts, err := l.accounts.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, account := range accounts {
		if _, err := l.ApplyInterest(ctx, account.ID); err != nil {
			log.Printf("interest run: skipping account %d: %v", account.ID, err)
			continue
		}
		applied++
	}

	return applied, nil
}

// CloseAccount stamps the close date on an account
func (l *AccountLedger) CloseAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	unlock := l.locks.lock(accountID)
	defer unlock()

	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account.CloseDate = &now
	if err := l.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes an account. The balance must be exactly zero;
// the comparison is intentionally exact, not a tolerance check.
func (l *AccountLedger) DeleteAccount(ctx context.Context, accountID int64) error {
	unlock := l.locks.lock(accountID)
	defer unlock()

	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if account.Balance != 0.0 {
		return model.ErrBalanceNotZero
	}

	return l.accounts.Delete(ctx, accountID)
}

// credit adds to the balance and appends the audit record.
// The caller must hold the account lock.
func (l *AccountLedger) credit(ctx context.Context, accountID int64, amount float64, narration string) (*model.Account, error) {
	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Balance += amount
	if err := l.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	if err := l.append(ctx, accountID, model.TransactionTypeDeposit, amount, narration); err != nil {
		return nil, err
	}

	return account, nil
}

// debit subtracts from the balance after the funds check and appends the
// audit record. The caller must hold the account lock.
func (l *AccountLedger) debit(ctx context.Context, accountID int64, amount float64) (*model.Account, error) {
	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.Balance < amount {
		return nil, model.ErrInsufficientFunds
	}

	account.Balance -= amount
	if err := l.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	if err := l.append(ctx, accountID, model.TransactionTypeWithdrawal, amount, "Cash Withdrawal"); err != nil {
		return nil, err
	}

	return account, nil
}

// append records the audit transaction for a committed balance change
func (l *AccountLedger) append(ctx context.Context, accountID int64, txType model.TransactionType, amount float64, narration string) error {
	tx := &model.Transaction{
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Date:      time.Now(),
		Narration: narration,
	}

	if _, err := l.transactions.Create(ctx, tx); err != nil {
		return fmt.Errorf("balance committed but transaction record failed: %w", err)
	}

	return nil
}

// formatRate renders an interest rate the way the legacy system printed
// doubles: minimal decimals, with a forced trailing .0 for whole numbers,
// so a 5 percent rate reads "5.0".
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package domain

import "time"

// EntryType is the direction of a ledger movement.
type EntryType string

const (
	EntryTypeDeposit  EntryType = "DEPOSIT"
	EntryTypeWithdraw EntryType = "WITHDRAW"
)

// Valid reports whether t is DEPOSIT or WITHDRAW.
func (t EntryType) Valid() bool {
	return t == EntryTypeDeposit || t == EntryTypeWithdraw
}

// LedgerEntry is an immutable monetary movement. Amount is always positive;
// the sign comes from Type.
type LedgerEntry struct {
	ID             int64     `json:"id"`
	AccountID      int64     `json:"account_id"`
	Type           EntryType `json:"transaction_type"`
	Amount         int64     `json:"amount"`
	IdempotencyKey *string   `json:"-"`
	CreatedAt      time.Time `json:"timestamp"`
}

// Signed returns the entry's contribution to the balance.
func (e *LedgerEntry) Signed() int64 {
	if e.Type == EntryTypeWithdraw {
		return -e.Amount
	}
	return e.Amount
}

// Balance folds entries into a balance. Order does not matter.
func Balance(entries []LedgerEntry) int64 {
	var total int64
	for i := range entries {
		total += entries[i].Signed()
	}
	return total
}

package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// KYCStatus is the verification lifecycle state of an account.
type KYCStatus string

const (
	KYCStatusIncomplete KYCStatus = "INCOMPLETE"
	KYCStatusPending    KYCStatus = "PENDING"
	KYCStatusVerified   KYCStatus = "VERIFIED"
	KYCStatusRejected   KYCStatus = "REJECTED"
)

// IsDecision reports whether s is a valid administrative outcome.
func (s KYCStatus) IsDecision() bool {
	return s == KYCStatusVerified || s == KYCStatusRejected
}

var (
	ErrKYCAlreadySubmitted = errors.New("kyc already submitted")
	ErrKYCNotPending       = errors.New("kyc is not pending")
	ErrKYCInvalidDecision  = errors.New("kyc decision must be VERIFIED or REJECTED")
	ErrInvalidIDNumber     = errors.New("id number must be 12 digits")
)

var idNumberRe = regexp.MustCompile(`^[0-9]{12}$`)

// ValidateIDNumber enforces the 12-digit national ID format.
func ValidateIDNumber(id string) error {
	if !idNumberRe.MatchString(id) {
		return ErrInvalidIDNumber
	}
	return nil
}

// MaskIDNumber hides all but the last four characters.
func MaskIDNumber(id string) string {
	if len(id) <= 4 {
		return id
	}
	return strings.Repeat("X", len(id)-4) + id[len(id)-4:]
}

// KYCRecord tracks identity verification for one account.
// The national ID is held encrypted (IDNumberEnc) with a keyed digest
// (IDNumberDigest) used for uniqueness.
type KYCRecord struct {
	AccountID      int64
	Status         KYCStatus
	IDNumberEnc    *string
	IDNumberDigest *string
	VerifiedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewKYCRecord returns the INCOMPLETE record created at registration.
func NewKYCRecord(accountID int64, now time.Time) *KYCRecord {
	return &KYCRecord{
		AccountID: accountID,
		Status:    KYCStatusIncomplete,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Submit moves INCOMPLETE -> PENDING and records the ID number.
func (k *KYCRecord) Submit(idEnc, idDigest string, now time.Time) error {
	if k.Status != KYCStatusIncomplete {
		return ErrKYCAlreadySubmitted
	}
	k.Status = KYCStatusPending
	k.IDNumberEnc = &idEnc
	k.IDNumberDigest = &idDigest
	k.VerifiedAt = nil
	k.UpdatedAt = now
	return nil
}

// Decide moves PENDING -> VERIFIED|REJECTED. The status is checked before
// the current state so an invalid decision never changes anything.
func (k *KYCRecord) Decide(status KYCStatus, now time.Time) error {
	if !status.IsDecision() {
		return ErrKYCInvalidDecision
	}
	if k.Status != KYCStatusPending {
		return ErrKYCNotPending
	}
	k.Status = status
	if status == KYCStatusVerified {
		k.VerifiedAt = &now
	} else {
		k.VerifiedAt = nil
	}
	k.UpdatedAt = now
	return nil
}

// ReplaceIDNumber overwrites the stored ID without changing status.
func (k *KYCRecord) ReplaceIDNumber(idEnc, idDigest string, now time.Time) {
	k.IDNumberEnc = &idEnc
	k.IDNumberDigest = &idDigest
	k.UpdatedAt = now
}

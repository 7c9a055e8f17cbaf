package models

import (
	"fmt"
	"time"
)

type CaseTransfer struct {
	Id          string
	CaseId      string
	FromUserId  string
	ToUserId    string
	Reason      string
	Notes       *string
	Status      CaseTransferStatus
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

type CaseTransferStatus string

const (
	TransferPending  CaseTransferStatus = "pending"
	TransferApproved CaseTransferStatus = "approved"
	TransferRejected CaseTransferStatus = "rejected"
	// A cancelled request is terminal like a rejection, but keeps its own
	// status so that the requester's withdrawal is distinguishable from a
	// refusal by the target lawyer.
	TransferCancelled CaseTransferStatus = "cancelled"
)

func (s CaseTransferStatus) IsResolved() bool {
	return s != TransferPending
}

type CreateCaseTransferAttributes struct {
	CaseId     string
	FromUserId string
	ToUserId   string
	Reason     string
	Notes      *string
}

type TransferListingType string

const (
	TransferListingSent     TransferListingType = "sent"
	TransferListingReceived TransferListingType = "received"
	TransferListingAll      TransferListingType = "all"
)

func ValidateTransferListingType(s string) (TransferListingType, error) {
	switch TransferListingType(s) {
	case TransferListingSent, TransferListingReceived, TransferListingAll:
		return TransferListingType(s), nil
	case "":
		return TransferListingAll, nil
	}
	return "", fmt.Errorf("invalid transfer listing type: %s %w", s, BadParameterError)
}

package ledgergrp

import (
	"github.com/AryaStark201/last-classroom/foundation/ledger"
	"github.com/AryaStark201/last-classroom/foundation/validate"
)

// newStudent defines the payload to register a student.
type newStudent struct {
	Name string `json:"name" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (ns newStudent) Validate() error {
	return validate.Check(ns)
}

// newCertificate defines the payload to stage a certificate.
type newCertificate struct {
	Student string `json:"student" validate:"required"`
	Course  string `json:"course" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (nc newCertificate) Validate() error {
	return validate.Check(nc)
}

// newAward defines the payload to issue an award coin.
type newAward struct {
	Student string `json:"student" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (na newAward) Validate() error {
	return validate.Check(na)
}

// newTransfer defines the payload to move coins between students.
type newTransfer struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount uint   `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note"`
}

// Validate checks the data in the model is considered clean.
func (nt newTransfer) Validate() error {
	return validate.Check(nt)
}

// =============================================================================

// block is the client facing representation of a block. Unlike the core
// block it carries the computed hash, since clients cannot recompute it.
type block struct {
	Number    uint64          `json:"number"`
	TimeStamp uint64          `json:"timestamp"`
	Nonce     uint64          `json:"nonce"`
	PrevHash  string          `json:"prev_hash"`
	Hash      string          `json:"hash"`
	Records   []ledger.Record `json:"records"`
}

func toBlock(blk ledger.Block) block {
	return block{
		Number:    blk.Number,
		TimeStamp: blk.TimeStamp,
		Nonce:     blk.Nonce,
		PrevHash:  blk.PrevHash,
		Hash:      blk.Hash(),
		Records:   blk.Records,
	}
}

// balance is the client facing representation of one account balance.
type balance struct {
	Account string `json:"account"`
	Balance int    `json:"balance"`
}

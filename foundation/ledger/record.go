package ledger

import "fmt"

// Set of record kinds a block can carry.
const (
	KindCertificate = "certificate"
	KindTransfer    = "transfer"
)

// Certificate documents the completion of a course by a student.
type Certificate struct {
	Student string `json:"student_name"`
	Course  string `json:"course_name"`
}

// Transfer documents coins moving from one participant to another.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint   `json:"amount"`
	Note   string `json:"note"`
}

// Record is the unit of data written into a block. It is a tagged union:
// exactly one of the variant fields is set and Kind identifies which one.
// Records are immutable once constructed.
type Record struct {
	Kind        string       `json:"kind"`
	Certificate *Certificate `json:"certificate,omitempty"`
	Transfer    *Transfer    `json:"transfer,omitempty"`
}

// NewCertificate constructs a record documenting a course completion.
func NewCertificate(student string, course string) Record {
	return Record{
		Kind: KindCertificate,
		Certificate: &Certificate{
			Student: student,
			Course:  course,
		},
	}
}

// NewTransfer constructs a record documenting a coin movement.
func NewTransfer(from string, to string, amount uint, note string) Record {
	return Record{
		Kind: KindTransfer,
		Transfer: &Transfer{
			From:   from,
			To:     to,
			Amount: amount,
			Note:   note,
		},
	}
}

// String implements the fmt.Stringer interface for event logging.
func (r Record) String() string {
	switch r.Kind {
	case KindCertificate:
		return fmt.Sprintf("certificate[%s: %s]", r.Certificate.Student, r.Certificate.Course)
	case KindTransfer:
		return fmt.Sprintf("transfer[%s -> %s: %d]", r.Transfer.From, r.Transfer.To, r.Transfer.Amount)
	}

	return "unknown"
}

package client

// Record is the unit of data carried by a block, a tagged union over the
// certificate and transfer variants.
type Record struct {
	Kind        string       `json:"kind"`
	Certificate *Certificate `json:"certificate,omitempty"`
	Transfer    *Transfer    `json:"transfer,omitempty"`
}

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

// Block is the service's representation of one block in the chain.
type Block struct {
	Number    uint64   `json:"number"`
	TimeStamp uint64   `json:"timestamp"`
	Nonce     uint64   `json:"nonce"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Records   []Record `json:"records"`
}

// Proof ties a certificate to the block that recorded it.
type Proof struct {
	BlockNumber uint64      `json:"block_number"`
	Certificate Certificate `json:"certificate"`
}

// Standing represents one participant's position on the leaderboard.
type Standing struct {
	Account string `json:"account"`
	Balance int    `json:"balance"`
}

// Balance represents one participant's balance.
type Balance struct {
	Account string `json:"account"`
	Balance int    `json:"balance"`
}

// errorResponse is the failure form the service responds with.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

package request

// JoinRequest is the request body for joining a session
type JoinRequest struct {
	Name string `json:"name"`
}

// CommitRequest is the request body for locking in a commitment digest
type CommitRequest struct {
	Name       string `json:"name"`
	Commitment string `json:"commitment"`
}

// RevealRequest is the request body for revealing a committed choice
type RevealRequest struct {
	Name   string `json:"name"`
	Choice string `json:"choice"`
	Salt   string `json:"salt"`
}

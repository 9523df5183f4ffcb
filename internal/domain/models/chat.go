package models

import "encoding/json"

// ChatRequest keeps messages raw so a missing field, a null and a non-array
// value can be told apart before decoding.
type ChatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

package models

import "github.com/alovak/testcards/internal/cardgen"

// IssueCards is the query of a card generation request.
type IssueCards struct {
	Type   string
	Count  int
	Years  int
	Unique bool
}

// Batch is a set of cards generated by one request.
type Batch struct {
	ID    string          `json:"batch_id"`
	Count int             `json:"count"`
	Cards []*cardgen.Card `json:"cards"`
}

type CardType struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Validation struct {
	Number   string `json:"number"`
	Valid    bool   `json:"valid"`
	CardType string `json:"card_type,omitempty"`
	// Expired is set only when an expiry was supplied.
	Expired *bool `json:"expired,omitempty"`
}

package models

import "github.com/tidwall/gjson"

// Transaction is a normalized roster transaction (trade, signing,
// injured-reserve move).
type Transaction struct {
	ID          string
	Date        string
	Type        string
	Description string
	Team        string
	AthleteName *string
}

// ParseTransactions extracts transactions from a transactions payload.
//
// Probe order for the list: items, transactions.
func ParseTransactions(raw []byte) ([]Transaction, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	nodes := items(root, "items", "transactions")
	transactions := make([]Transaction, 0, len(nodes))
	for _, node := range nodes {
		tx, err := transactionFrom(node)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func transactionFrom(node gjson.Result) (Transaction, error) {
	id := node.Get("id")
	if !id.Exists() {
		return Transaction{}, missingID("transaction")
	}
	return Transaction{
		ID:          id.String(),
		Date:        node.Get("date").String(),
		Type:        probe(node, "type.text", "type").String(),
		Description: node.Get("description").String(),
		Team:        node.Get("team.displayName").String(),
		AthleteName: strPtr(node.Get("athlete.displayName")),
	}, nil
}

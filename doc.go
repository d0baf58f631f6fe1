// Package itemsets is a frequent-itemset mining toolkit: given a set of
// transactions (each a set of items), it finds every combination of items
// that occurs together in at least a given share of the transactions.
//
// What is in the module?
//
//	A small, deterministic library plus a command-line host:
//		• Transactions: presence matrix, vocabulary and label encoder
//		• Readers: CSV baskets, CSV one-hot tables, SQL (transaction, item) rows
//		• Mining: FP-Growth with length limits, parallel branches, hooks
//		• CLI: mine files or databases, print JSON, YAML or a table
//
// Packages:
//
//	transactions/         Matrix, Dense, Vocabulary, Encoder, input-shape errors
//	transactions/csv/     ReadBaskets, ReadOneHot and their file-path variants
//	transactions/sqlset/  ReadBaskets over database/sql
//	fpgrowth/             Mine, MineBaskets, Result and options
//	cmd/itemsets/         the itemsets command
//	examples/             runnable programs
//
// Quick example:
//
//	receipts    {bread, milk} {bread, beer} {bread, milk, beer}
//	support 2/3 {bread} 1.0  {milk} 0.67  {beer} 0.67
//	            {bread, milk} 0.67  {bread, beer} 0.67
//
//	go install github.com/katalvlaran/itemsets/cmd/itemsets@latest
package itemsets

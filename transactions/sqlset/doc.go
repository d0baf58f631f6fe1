/*
Package sqlset reads transactions stored in a relational database through
database/sql.

The query must return two columns per row: a transaction identifier and an
item label, one row per (transaction, item) pair. Rows are grouped into
baskets in order of first appearance of each transaction identifier, so the
query's ORDER BY fixes the transaction order.

The package does not register any driver. Programs import the driver they
need, for instance:

	import _ "github.com/mattn/go-sqlite3" // sqlite3
	import _ "github.com/lib/pq"           // postgres
*/
package sqlset

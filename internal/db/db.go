package db

import "database/sql"

// DB wraps the sql pool so services depend on one internal type.
type DB struct {
	*sql.DB
}

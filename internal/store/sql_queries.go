package store

import (
	sq "github.com/Masterminds/squirrel"
)

// selectVersion reads the server version banner, e.g.
// "PostgreSQL 16.3 on x86_64-pc-linux-gnu, compiled by gcc ...".
var selectVersion = sq.Select("version()")

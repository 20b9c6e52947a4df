package visibility

import (
	"fmt"

	"gorm.io/gorm"
)

// WhereClause is the SQL-stage list filter. For signed-in viewers it is a
// superset: MUTUAL_FRIENDS posts from any author pass and must still go
// through BatchFilter before being shown.
func WhereClause(viewerID uint64, alias string) (string, []interface{}) {
	col := func(name string) string {
		if alias == "" {
			return name
		}
		return fmt.Sprintf("%s.%s", alias, name)
	}

	if viewerID == 0 {
		return fmt.Sprintf("%s = ?", col("visibility")), []interface{}{Public}
	}
	return fmt.Sprintf("(%s = ? OR %s IN (?, ?))", col("user_id"), col("visibility")),
		[]interface{}{viewerID, Public, MutualFriends}
}

// Scope applies WhereClause to a gorm query.
func Scope(viewerID uint64, alias string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond, args := WhereClause(viewerID, alias)
		return db.Where(cond, args...)
	}
}

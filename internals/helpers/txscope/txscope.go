// Package txscope is the tagged transaction variant record writers accept:
// either no transaction (the write commits on its own) or a caller-supplied
// one (all-or-nothing with sibling operations). A writer given Within never
// opens its own top-level transaction.
package txscope

import "gorm.io/gorm"

type Scope struct {
	tx *gorm.DB
}

func None() Scope { return Scope{} }

func Within(tx *gorm.DB) Scope { return Scope{tx: tx} }

func (s Scope) InTransaction() bool { return s.tx != nil }

// DB resolves the handle a write should run on: the enclosing transaction
// when present, otherwise the fallback connection.
func (s Scope) DB(fallback *gorm.DB) *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return fallback
}

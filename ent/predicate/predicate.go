// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// DocCollection is the predicate function for doccollection builders.
type DocCollection func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

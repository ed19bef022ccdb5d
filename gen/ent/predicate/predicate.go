// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// SyllabusFile is the predicate function for syllabusfile builders.
type SyllabusFile func(*sql.Selector)

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Course struct{ ent.Schema }

func (Course) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "courses"},
	}
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		// Sentinel values ("Unknown Course Code", …) stand in for
		// unextracted fields, so these are NotEmpty rather than Optional.
		field.String("code").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("term").NotEmpty(),
		field.String("description").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE course -> MANY assignments
		edge.To("assignments", Assignment.Type),
		// ONE course -> MANY files
		edge.To("files", SyllabusFile.Type),
		// ONE course -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

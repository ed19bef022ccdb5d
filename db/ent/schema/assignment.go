package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/db/ent/schema/utils"
)

type Assignment struct{ ent.Schema }

func (Assignment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "assignments"},
	}
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("course_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Time("due_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.AssignmentStatuses...)),
		field.Strings("tags").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY assignments -> ONE course (FK: assignments.course_id)
		edge.From("course", Course.Type).
			Ref("assignments").
			Field("course_id").
			Required().
			Unique(),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "due_date"),
		index.Fields("course_id", "status"),
	}
}

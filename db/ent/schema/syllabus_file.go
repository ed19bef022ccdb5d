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

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/db/ent/schema/utils"
)

type SyllabusFile struct{ ent.Schema }

func (SyllabusFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "syllabus_files"},
	}
}

func (SyllabusFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty().
			Validate(func(s string) error {
				if _, ok := constants.AllowedExtensions[constants.NormalizeExt(s)]; ok {
					return nil
				}
				return utils.ErrInvalidEnum
			}),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SyllabusFile) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY files -> ONE course (FK: syllabus_files.course_id)
		edge.From("course", Course.Type).
			Ref("files").
			Field("course_id").
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (SyllabusFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_hash"),
	}
}

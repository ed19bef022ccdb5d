// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_courses_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[8]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_course_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[8], AssignmentsColumns[3]},
			},
			{
				Name:    "assignment_course_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[8], AssignmentsColumns[4]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_user_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[1]},
			},
		},
	}
	// ParseJobColumns holds the columns for the "parse_job" table.
	ParseJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "assignments_count", Type: field.TypeInt, Default: 0},
		{Name: "course_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ParseJobTable holds the schema information for the "parse_job" table.
	ParseJobTable = &schema.Table{
		Name:       "parse_job",
		Columns:    ParseJobColumns,
		PrimaryKey: []*schema.Column{ParseJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_job_courses_jobs",
				Columns:    []*schema.Column{ParseJobColumns[11]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_job_syllabus_files_jobs",
				Columns:    []*schema.Column{ParseJobColumns[12]},
				RefColumns: []*schema.Column{SyllabusFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_user_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[1], ParseJobColumns[5], ParseJobColumns[3]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[12]},
			},
			{
				Name:    "parsejob_course_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[11]},
			},
		},
	}
	// SyllabusFilesColumns holds the columns for the "syllabus_files" table.
	SyllabusFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID, Nullable: true},
	}
	// SyllabusFilesTable holds the schema information for the "syllabus_files" table.
	SyllabusFilesTable = &schema.Table{
		Name:       "syllabus_files",
		Columns:    SyllabusFilesColumns,
		PrimaryKey: []*schema.Column{SyllabusFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "syllabus_files_courses_files",
				Columns:    []*schema.Column{SyllabusFilesColumns[7]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "syllabusfile_user_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{SyllabusFilesColumns[1], SyllabusFilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		CoursesTable,
		ParseJobTable,
		SyllabusFilesTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = CoursesTable
	AssignmentsTable.Annotation = &entsql.Annotation{
		Table: "assignments",
	}
	CoursesTable.Annotation = &entsql.Annotation{
		Table: "courses",
	}
	ParseJobTable.ForeignKeys[0].RefTable = CoursesTable
	ParseJobTable.ForeignKeys[1].RefTable = SyllabusFilesTable
	ParseJobTable.Annotation = &entsql.Annotation{
		Table: "parse_job",
	}
	SyllabusFilesTable.ForeignKeys[0].RefTable = CoursesTable
	SyllabusFilesTable.Annotation = &entsql.Annotation{
		Table: "syllabus_files",
	}
}

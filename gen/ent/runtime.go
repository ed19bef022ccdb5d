// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coursedeck/syllabus-tracker/db/ent/schema"
	"github.com/coursedeck/syllabus-tracker/gen/ent/assignment"
	"github.com/coursedeck/syllabus-tracker/gen/ent/course"
	"github.com/coursedeck/syllabus-tracker/gen/ent/parsejob"
	"github.com/coursedeck/syllabus-tracker/gen/ent/syllabusfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescTitle is the schema descriptor for title field.
	assignmentDescTitle := assignmentFields[2].Descriptor()
	// assignment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assignment.TitleValidator = assignmentDescTitle.Validators[0].(func(string) error)
	// assignmentDescStatus is the schema descriptor for status field.
	assignmentDescStatus := assignmentFields[5].Descriptor()
	// assignment.DefaultStatus holds the default value on creation for the status field.
	assignment.DefaultStatus = assignmentDescStatus.Default.(string)
	// assignment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	assignment.StatusValidator = assignmentDescStatus.Validators[0].(func(string) error)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[7].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentFields[8].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assignmentDescID is the schema descriptor for id field.
	assignmentDescID := assignmentFields[0].Descriptor()
	// assignment.DefaultID holds the default value on creation for the id field.
	assignment.DefaultID = assignmentDescID.Default.(func() uuid.UUID)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCode is the schema descriptor for code field.
	courseDescCode := courseFields[2].Descriptor()
	// course.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	course.CodeValidator = courseDescCode.Validators[0].(func(string) error)
	// courseDescName is the schema descriptor for name field.
	courseDescName := courseFields[3].Descriptor()
	// course.NameValidator is a validator for the "name" field. It is called by the builders before save.
	course.NameValidator = courseDescName.Validators[0].(func(string) error)
	// courseDescTerm is the schema descriptor for term field.
	courseDescTerm := courseFields[4].Descriptor()
	// course.TermValidator is a validator for the "term" field. It is called by the builders before save.
	course.TermValidator = courseDescTerm.Validators[0].(func(string) error)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[5].Descriptor()
	// course.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	course.DescriptionValidator = courseDescDescription.Validators[0].(func(string) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[6].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[7].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[5].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescAssignmentsCount is the schema descriptor for assignments_count field.
	parsejobDescAssignmentsCount := parsejobFields[12].Descriptor()
	// parsejob.DefaultAssignmentsCount holds the default value on creation for the assignments_count field.
	parsejob.DefaultAssignmentsCount = parsejobDescAssignmentsCount.Default.(int)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	syllabusfileFields := schema.SyllabusFile{}.Fields()
	_ = syllabusfileFields
	// syllabusfileDescFilename is the schema descriptor for filename field.
	syllabusfileDescFilename := syllabusfileFields[3].Descriptor()
	// syllabusfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	syllabusfile.FilenameValidator = syllabusfileDescFilename.Validators[0].(func(string) error)
	// syllabusfileDescFileExt is the schema descriptor for file_ext field.
	syllabusfileDescFileExt := syllabusfileFields[4].Descriptor()
	// syllabusfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	syllabusfile.FileExtValidator = func() func(string) error {
		validators := syllabusfileDescFileExt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_ext string) error {
			for _, fn := range fns {
				if err := fn(file_ext); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syllabusfileDescFileSize is the schema descriptor for file_size field.
	syllabusfileDescFileSize := syllabusfileFields[5].Descriptor()
	// syllabusfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	syllabusfile.FileSizeValidator = syllabusfileDescFileSize.Validators[0].(func(int) error)
	// syllabusfileDescContentHash is the schema descriptor for content_hash field.
	syllabusfileDescContentHash := syllabusfileFields[6].Descriptor()
	// syllabusfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	syllabusfile.ContentHashValidator = syllabusfileDescContentHash.Validators[0].(func([]byte) error)
	// syllabusfileDescUploadedAt is the schema descriptor for uploaded_at field.
	syllabusfileDescUploadedAt := syllabusfileFields[7].Descriptor()
	// syllabusfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	syllabusfile.DefaultUploadedAt = syllabusfileDescUploadedAt.Default.(func() time.Time)
	// syllabusfileDescID is the schema descriptor for id field.
	syllabusfileDescID := syllabusfileFields[0].Descriptor()
	// syllabusfile.DefaultID holds the default value on creation for the id field.
	syllabusfile.DefaultID = syllabusfileDescID.Default.(func() uuid.UUID)
}

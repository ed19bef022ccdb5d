// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: syllabus/v1/syllabus.proto

package syllabusv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Course struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Name          string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Term          string                 `protobuf:"bytes,5,opt,name=term,proto3" json:"term,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Course) Reset() {
	*x = Course{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Course) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Course) ProtoMessage() {}

func (x *Course) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Course.ProtoReflect.Descriptor instead.
func (*Course) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{0}
}

func (x *Course) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Course) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Course) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Course) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Course) GetTerm() string {
	if x != nil {
		return x.Term
	}
	return ""
}

func (x *Course) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Course) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type Assignment struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CourseId    string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title       string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	// YYYY-MM-DD; empty when no due date was resolved.
	DueDate       string   `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Status        string   `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Tags          []string `protobuf:"bytes,7,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Assignment) Reset() {
	*x = Assignment{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Assignment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Assignment) ProtoMessage() {}

func (x *Assignment) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Assignment.ProtoReflect.Descriptor instead.
func (*Assignment) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{1}
}

func (x *Assignment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Assignment) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Assignment) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Assignment) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Assignment) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Assignment) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Assignment) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type ParseSyllabusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseSyllabusRequest) Reset() {
	*x = ParseSyllabusRequest{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseSyllabusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseSyllabusRequest) ProtoMessage() {}

func (x *ParseSyllabusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseSyllabusRequest.ProtoReflect.Descriptor instead.
func (*ParseSyllabusRequest) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{2}
}

func (x *ParseSyllabusRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ParseSyllabusRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ParseSyllabusRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

// AssignmentCandidate is a (title, raw date) pair supplied by a caller
// that already split the schedule table itself.
type AssignmentCandidate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	DueDate       string                 `protobuf:"bytes,2,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignmentCandidate) Reset() {
	*x = AssignmentCandidate{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignmentCandidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignmentCandidate) ProtoMessage() {}

func (x *AssignmentCandidate) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignmentCandidate.ProtoReflect.Descriptor instead.
func (*AssignmentCandidate) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{3}
}

func (x *AssignmentCandidate) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *AssignmentCandidate) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

type ParseSyllabusTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Candidates    []*AssignmentCandidate `protobuf:"bytes,3,rep,name=candidates,proto3" json:"candidates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseSyllabusTextRequest) Reset() {
	*x = ParseSyllabusTextRequest{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseSyllabusTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseSyllabusTextRequest) ProtoMessage() {}

func (x *ParseSyllabusTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseSyllabusTextRequest.ProtoReflect.Descriptor instead.
func (*ParseSyllabusTextRequest) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{4}
}

func (x *ParseSyllabusTextRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ParseSyllabusTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ParseSyllabusTextRequest) GetCandidates() []*AssignmentCandidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type ParseSyllabusResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Course           *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	Assignments      []*Assignment          `protobuf:"bytes,2,rep,name=assignments,proto3" json:"assignments,omitempty"`
	FileId           string                 `protobuf:"bytes,3,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	JobId            string                 `protobuf:"bytes,4,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	AssignmentsCount int32                  `protobuf:"varint,5,opt,name=assignments_count,json=assignmentsCount,proto3" json:"assignments_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ParseSyllabusResponse) Reset() {
	*x = ParseSyllabusResponse{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseSyllabusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseSyllabusResponse) ProtoMessage() {}

func (x *ParseSyllabusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseSyllabusResponse.ProtoReflect.Descriptor instead.
func (*ParseSyllabusResponse) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{5}
}

func (x *ParseSyllabusResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *ParseSyllabusResponse) GetAssignments() []*Assignment {
	if x != nil {
		return x.Assignments
	}
	return nil
}

func (x *ParseSyllabusResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ParseSyllabusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseSyllabusResponse) GetAssignmentsCount() int32 {
	if x != nil {
		return x.AssignmentsCount
	}
	return 0
}

type ListCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesRequest) Reset() {
	*x = ListCoursesRequest{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesRequest) ProtoMessage() {}

func (x *ListCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesRequest.ProtoReflect.Descriptor instead.
func (*ListCoursesRequest) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{6}
}

func (x *ListCoursesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*Course              `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesResponse) Reset() {
	*x = ListCoursesResponse{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesResponse) ProtoMessage() {}

func (x *ListCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesResponse.ProtoReflect.Descriptor instead.
func (*ListCoursesResponse) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{7}
}

func (x *ListCoursesResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

type ListAssignmentsRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	CourseId string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	// Optional YYYY-MM-DD bounds on due_date.
	From          string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Status        string `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAssignmentsRequest) Reset() {
	*x = ListAssignmentsRequest{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAssignmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAssignmentsRequest) ProtoMessage() {}

func (x *ListAssignmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAssignmentsRequest.ProtoReflect.Descriptor instead.
func (*ListAssignmentsRequest) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{8}
}

func (x *ListAssignmentsRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *ListAssignmentsRequest) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *ListAssignmentsRequest) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *ListAssignmentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListAssignmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assignments   []*Assignment          `protobuf:"bytes,1,rep,name=assignments,proto3" json:"assignments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAssignmentsResponse) Reset() {
	*x = ListAssignmentsResponse{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAssignmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAssignmentsResponse) ProtoMessage() {}

func (x *ListAssignmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAssignmentsResponse.ProtoReflect.Descriptor instead.
func (*ListAssignmentsResponse) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{9}
}

func (x *ListAssignmentsResponse) GetAssignments() []*Assignment {
	if x != nil {
		return x.Assignments
	}
	return nil
}

type ExportAssignmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAssignmentsRequest) Reset() {
	*x = ExportAssignmentsRequest{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAssignmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAssignmentsRequest) ProtoMessage() {}

func (x *ExportAssignmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAssignmentsRequest.ProtoReflect.Descriptor instead.
func (*ExportAssignmentsRequest) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{10}
}

func (x *ExportAssignmentsRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type ExportAssignmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAssignmentsResponse) Reset() {
	*x = ExportAssignmentsResponse{}
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAssignmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAssignmentsResponse) ProtoMessage() {}

func (x *ExportAssignmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_syllabus_v1_syllabus_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAssignmentsResponse.ProtoReflect.Descriptor instead.
func (*ExportAssignmentsResponse) Descriptor() ([]byte, []int) {
	return file_syllabus_v1_syllabus_proto_rawDescGZIP(), []int{11}
}

func (x *ExportAssignmentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportAssignmentsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_syllabus_v1_syllabus_proto protoreflect.FileDescriptor

const file_syllabus_v1_syllabus_proto_rawDesc = "" +
	"\n" +
	"\x1asyllabus/v1/syllabus.proto\x12\vsyllabus.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xca\x01\n" +
	"\x06Course\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12\x12\n" +
	"\x04term\x18\x05 \x01(\tR\x04term\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\xb8\x01\n" +
	"\n" +
	"Assignment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x12\n" +
	"\x04tags\x18\a \x03(\tR\x04tags\"e\n" +
	"\x14ParseSyllabusRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"F\n" +
	"\x13AssignmentCandidate\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x19\n" +
	"\bdue_date\x18\x02 \x01(\tR\adueDate\"\x89\x01\n" +
	"\x18ParseSyllabusTextRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12@\n" +
	"\n" +
	"candidates\x18\x03 \x03(\v2 .syllabus.v1.AssignmentCandidateR\n" +
	"candidates\"\xdc\x01\n" +
	"\x15ParseSyllabusResponse\x12+\n" +
	"\x06course\x18\x01 \x01(\v2\x13.syllabus.v1.CourseR\x06course\x129\n" +
	"\vassignments\x18\x02 \x03(\v2\x17.syllabus.v1.AssignmentR\vassignments\x12\x17\n" +
	"\afile_id\x18\x03 \x01(\tR\x06fileId\x12\x15\n" +
	"\x06job_id\x18\x04 \x01(\tR\x05jobId\x12+\n" +
	"\x11assignments_count\x18\x05 \x01(\x05R\x10assignmentsCount\"-\n" +
	"\x12ListCoursesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"D\n" +
	"\x13ListCoursesResponse\x12-\n" +
	"\acourses\x18\x01 \x03(\v2\x13.syllabus.v1.CourseR\acourses\"q\n" +
	"\x16ListAssignmentsRequest\x12\x1b\n" +
	"\tcourse_id\x18\x01 \x01(\tR\bcourseId\x12\x12\n" +
	"\x04from\x18\x02 \x01(\tR\x04from\x12\x0e\n" +
	"\x02to\x18\x03 \x01(\tR\x02to\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\"T\n" +
	"\x17ListAssignmentsResponse\x129\n" +
	"\vassignments\x18\x01 \x03(\v2\x17.syllabus.v1.AssignmentR\vassignments\"7\n" +
	"\x18ExportAssignmentsRequest\x12\x1b\n" +
	"\tcourse_id\x18\x01 \x01(\tR\bcourseId\"Q\n" +
	"\x19ExportAssignmentsResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xdd\x03\n" +
	"\x0fSyllabusService\x12V\n" +
	"\rParseSyllabus\x12!.syllabus.v1.ParseSyllabusRequest\x1a\".syllabus.v1.ParseSyllabusResponse\x12^\n" +
	"\x11ParseSyllabusText\x12%.syllabus.v1.ParseSyllabusTextRequest\x1a\".syllabus.v1.ParseSyllabusResponse\x12P\n" +
	"\vListCourses\x12\x1f.syllabus.v1.ListCoursesRequest\x1a .syllabus.v1.ListCoursesResponse\x12\\\n" +
	"\x0fListAssignments\x12#.syllabus.v1.ListAssignmentsRequest\x1a$.syllabus.v1.ListAssignmentsResponse\x12b\n" +
	"\x11ExportAssignments\x12%.syllabus.v1.ExportAssignmentsRequest\x1a&.syllabus.v1.ExportAssignmentsResponseBIZGgithub.com/coursedeck/syllabus-tracker/gen/proto/syllabus/v1;syllabusv1b\x06proto3"

var (
	file_syllabus_v1_syllabus_proto_rawDescOnce sync.Once
	file_syllabus_v1_syllabus_proto_rawDescData []byte
)

func file_syllabus_v1_syllabus_proto_rawDescGZIP() []byte {
	file_syllabus_v1_syllabus_proto_rawDescOnce.Do(func() {
		file_syllabus_v1_syllabus_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_syllabus_v1_syllabus_proto_rawDesc), len(file_syllabus_v1_syllabus_proto_rawDesc)))
	})
	return file_syllabus_v1_syllabus_proto_rawDescData
}

var file_syllabus_v1_syllabus_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_syllabus_v1_syllabus_proto_goTypes = []any{
	(*Course)(nil),                    // 0: syllabus.v1.Course
	(*Assignment)(nil),                // 1: syllabus.v1.Assignment
	(*ParseSyllabusRequest)(nil),      // 2: syllabus.v1.ParseSyllabusRequest
	(*AssignmentCandidate)(nil),       // 3: syllabus.v1.AssignmentCandidate
	(*ParseSyllabusTextRequest)(nil),  // 4: syllabus.v1.ParseSyllabusTextRequest
	(*ParseSyllabusResponse)(nil),     // 5: syllabus.v1.ParseSyllabusResponse
	(*ListCoursesRequest)(nil),        // 6: syllabus.v1.ListCoursesRequest
	(*ListCoursesResponse)(nil),       // 7: syllabus.v1.ListCoursesResponse
	(*ListAssignmentsRequest)(nil),    // 8: syllabus.v1.ListAssignmentsRequest
	(*ListAssignmentsResponse)(nil),   // 9: syllabus.v1.ListAssignmentsResponse
	(*ExportAssignmentsRequest)(nil),  // 10: syllabus.v1.ExportAssignmentsRequest
	(*ExportAssignmentsResponse)(nil), // 11: syllabus.v1.ExportAssignmentsResponse
	(*timestamppb.Timestamp)(nil),     // 12: google.protobuf.Timestamp
}
var file_syllabus_v1_syllabus_proto_depIdxs = []int32{
	12, // 0: syllabus.v1.Course.created_at:type_name -> google.protobuf.Timestamp
	3,  // 1: syllabus.v1.ParseSyllabusTextRequest.candidates:type_name -> syllabus.v1.AssignmentCandidate
	0,  // 2: syllabus.v1.ParseSyllabusResponse.course:type_name -> syllabus.v1.Course
	1,  // 3: syllabus.v1.ParseSyllabusResponse.assignments:type_name -> syllabus.v1.Assignment
	0,  // 4: syllabus.v1.ListCoursesResponse.courses:type_name -> syllabus.v1.Course
	1,  // 5: syllabus.v1.ListAssignmentsResponse.assignments:type_name -> syllabus.v1.Assignment
	2,  // 6: syllabus.v1.SyllabusService.ParseSyllabus:input_type -> syllabus.v1.ParseSyllabusRequest
	4,  // 7: syllabus.v1.SyllabusService.ParseSyllabusText:input_type -> syllabus.v1.ParseSyllabusTextRequest
	6,  // 8: syllabus.v1.SyllabusService.ListCourses:input_type -> syllabus.v1.ListCoursesRequest
	8,  // 9: syllabus.v1.SyllabusService.ListAssignments:input_type -> syllabus.v1.ListAssignmentsRequest
	10, // 10: syllabus.v1.SyllabusService.ExportAssignments:input_type -> syllabus.v1.ExportAssignmentsRequest
	5,  // 11: syllabus.v1.SyllabusService.ParseSyllabus:output_type -> syllabus.v1.ParseSyllabusResponse
	5,  // 12: syllabus.v1.SyllabusService.ParseSyllabusText:output_type -> syllabus.v1.ParseSyllabusResponse
	7,  // 13: syllabus.v1.SyllabusService.ListCourses:output_type -> syllabus.v1.ListCoursesResponse
	9,  // 14: syllabus.v1.SyllabusService.ListAssignments:output_type -> syllabus.v1.ListAssignmentsResponse
	11, // 15: syllabus.v1.SyllabusService.ExportAssignments:output_type -> syllabus.v1.ExportAssignmentsResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_syllabus_v1_syllabus_proto_init() }
func file_syllabus_v1_syllabus_proto_init() {
	if File_syllabus_v1_syllabus_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_syllabus_v1_syllabus_proto_rawDesc), len(file_syllabus_v1_syllabus_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_syllabus_v1_syllabus_proto_goTypes,
		DependencyIndexes: file_syllabus_v1_syllabus_proto_depIdxs,
		MessageInfos:      file_syllabus_v1_syllabus_proto_msgTypes,
	}.Build()
	File_syllabus_v1_syllabus_proto = out.File
	file_syllabus_v1_syllabus_proto_goTypes = nil
	file_syllabus_v1_syllabus_proto_depIdxs = nil
}

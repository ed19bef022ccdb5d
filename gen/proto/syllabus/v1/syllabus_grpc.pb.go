// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: syllabus/v1/syllabus.proto

package syllabusv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SyllabusService_ParseSyllabus_FullMethodName     = "/syllabus.v1.SyllabusService/ParseSyllabus"
	SyllabusService_ParseSyllabusText_FullMethodName = "/syllabus.v1.SyllabusService/ParseSyllabusText"
	SyllabusService_ListCourses_FullMethodName       = "/syllabus.v1.SyllabusService/ListCourses"
	SyllabusService_ListAssignments_FullMethodName   = "/syllabus.v1.SyllabusService/ListAssignments"
	SyllabusService_ExportAssignments_FullMethodName = "/syllabus.v1.SyllabusService/ExportAssignments"
)

// SyllabusServiceClient is the client API for SyllabusService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SyllabusService parses uploaded syllabi into courses and assignment
// schedules, and serves the resulting records.
type SyllabusServiceClient interface {
	// ParseSyllabus runs the full pipeline over raw document bytes.
	ParseSyllabus(ctx context.Context, in *ParseSyllabusRequest, opts ...grpc.CallOption) (*ParseSyllabusResponse, error)
	// ParseSyllabusText runs the pipeline over already-extracted text,
	// optionally with pre-parsed assignment candidates.
	ParseSyllabusText(ctx context.Context, in *ParseSyllabusTextRequest, opts ...grpc.CallOption) (*ParseSyllabusResponse, error)
	ListCourses(ctx context.Context, in *ListCoursesRequest, opts ...grpc.CallOption) (*ListCoursesResponse, error)
	ListAssignments(ctx context.Context, in *ListAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error)
	// ExportAssignments renders a course's schedule as an XLSX workbook.
	ExportAssignments(ctx context.Context, in *ExportAssignmentsRequest, opts ...grpc.CallOption) (*ExportAssignmentsResponse, error)
}

type syllabusServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSyllabusServiceClient(cc grpc.ClientConnInterface) SyllabusServiceClient {
	return &syllabusServiceClient{cc}
}

func (c *syllabusServiceClient) ParseSyllabus(ctx context.Context, in *ParseSyllabusRequest, opts ...grpc.CallOption) (*ParseSyllabusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseSyllabusResponse)
	err := c.cc.Invoke(ctx, SyllabusService_ParseSyllabus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syllabusServiceClient) ParseSyllabusText(ctx context.Context, in *ParseSyllabusTextRequest, opts ...grpc.CallOption) (*ParseSyllabusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseSyllabusResponse)
	err := c.cc.Invoke(ctx, SyllabusService_ParseSyllabusText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syllabusServiceClient) ListCourses(ctx context.Context, in *ListCoursesRequest, opts ...grpc.CallOption) (*ListCoursesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCoursesResponse)
	err := c.cc.Invoke(ctx, SyllabusService_ListCourses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syllabusServiceClient) ListAssignments(ctx context.Context, in *ListAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAssignmentsResponse)
	err := c.cc.Invoke(ctx, SyllabusService_ListAssignments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syllabusServiceClient) ExportAssignments(ctx context.Context, in *ExportAssignmentsRequest, opts ...grpc.CallOption) (*ExportAssignmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAssignmentsResponse)
	err := c.cc.Invoke(ctx, SyllabusService_ExportAssignments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyllabusServiceServer is the server API for SyllabusService service.
// All implementations must embed UnimplementedSyllabusServiceServer
// for forward compatibility.
//
// SyllabusService parses uploaded syllabi into courses and assignment
// schedules, and serves the resulting records.
type SyllabusServiceServer interface {
	// ParseSyllabus runs the full pipeline over raw document bytes.
	ParseSyllabus(context.Context, *ParseSyllabusRequest) (*ParseSyllabusResponse, error)
	// ParseSyllabusText runs the pipeline over already-extracted text,
	// optionally with pre-parsed assignment candidates.
	ParseSyllabusText(context.Context, *ParseSyllabusTextRequest) (*ParseSyllabusResponse, error)
	ListCourses(context.Context, *ListCoursesRequest) (*ListCoursesResponse, error)
	ListAssignments(context.Context, *ListAssignmentsRequest) (*ListAssignmentsResponse, error)
	// ExportAssignments renders a course's schedule as an XLSX workbook.
	ExportAssignments(context.Context, *ExportAssignmentsRequest) (*ExportAssignmentsResponse, error)
	mustEmbedUnimplementedSyllabusServiceServer()
}

// UnimplementedSyllabusServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSyllabusServiceServer struct{}

func (UnimplementedSyllabusServiceServer) ParseSyllabus(context.Context, *ParseSyllabusRequest) (*ParseSyllabusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseSyllabus not implemented")
}
func (UnimplementedSyllabusServiceServer) ParseSyllabusText(context.Context, *ParseSyllabusTextRequest) (*ParseSyllabusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseSyllabusText not implemented")
}
func (UnimplementedSyllabusServiceServer) ListCourses(context.Context, *ListCoursesRequest) (*ListCoursesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCourses not implemented")
}
func (UnimplementedSyllabusServiceServer) ListAssignments(context.Context, *ListAssignmentsRequest) (*ListAssignmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAssignments not implemented")
}
func (UnimplementedSyllabusServiceServer) ExportAssignments(context.Context, *ExportAssignmentsRequest) (*ExportAssignmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportAssignments not implemented")
}
func (UnimplementedSyllabusServiceServer) mustEmbedUnimplementedSyllabusServiceServer() {}
func (UnimplementedSyllabusServiceServer) testEmbeddedByValue()                         {}

// UnsafeSyllabusServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SyllabusServiceServer will
// result in compilation errors.
type UnsafeSyllabusServiceServer interface {
	mustEmbedUnimplementedSyllabusServiceServer()
}

func RegisterSyllabusServiceServer(s grpc.ServiceRegistrar, srv SyllabusServiceServer) {
	// If the following call pancis, it indicates UnimplementedSyllabusServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SyllabusService_ServiceDesc, srv)
}

func _SyllabusService_ParseSyllabus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseSyllabusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyllabusServiceServer).ParseSyllabus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyllabusService_ParseSyllabus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyllabusServiceServer).ParseSyllabus(ctx, req.(*ParseSyllabusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyllabusService_ParseSyllabusText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseSyllabusTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyllabusServiceServer).ParseSyllabusText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyllabusService_ParseSyllabusText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyllabusServiceServer).ParseSyllabusText(ctx, req.(*ParseSyllabusTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyllabusService_ListCourses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCoursesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyllabusServiceServer).ListCourses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyllabusService_ListCourses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyllabusServiceServer).ListCourses(ctx, req.(*ListCoursesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyllabusService_ListAssignments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyllabusServiceServer).ListAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyllabusService_ListAssignments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyllabusServiceServer).ListAssignments(ctx, req.(*ListAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyllabusService_ExportAssignments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyllabusServiceServer).ExportAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyllabusService_ExportAssignments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyllabusServiceServer).ExportAssignments(ctx, req.(*ExportAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyllabusService_ServiceDesc is the grpc.ServiceDesc for SyllabusService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SyllabusService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "syllabus.v1.SyllabusService",
	HandlerType: (*SyllabusServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseSyllabus",
			Handler:    _SyllabusService_ParseSyllabus_Handler,
		},
		{
			MethodName: "ParseSyllabusText",
			Handler:    _SyllabusService_ParseSyllabusText_Handler,
		},
		{
			MethodName: "ListCourses",
			Handler:    _SyllabusService_ListCourses_Handler,
		},
		{
			MethodName: "ListAssignments",
			Handler:    _SyllabusService_ListAssignments_Handler,
		},
		{
			MethodName: "ExportAssignments",
			Handler:    _SyllabusService_ExportAssignments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "syllabus/v1/syllabus.proto",
}

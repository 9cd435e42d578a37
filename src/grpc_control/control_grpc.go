package grpc_control

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service is described by hand over protobuf well-known types, so no
// generated message code is needed. Clients built from any proto declaring
//
//	service Control {
//	  rpc GetState(google.protobuf.Empty) returns (google.protobuf.Struct);
//	  rpc Refresh(google.protobuf.Empty) returns (google.protobuf.Empty);
//	  rpc Filter(google.protobuf.Struct) returns (google.protobuf.ListValue);
//	}
//
// in package marketviewer are wire compatible.

const (
	ServiceName = "marketviewer.Control"

	GetStateMethod = "/" + ServiceName + "/GetState"
	RefreshMethod  = "/" + ServiceName + "/Refresh"
	FilterMethod   = "/" + ServiceName + "/Filter"
)

// -----------------------------------------------------------------------------
// Server side
// -----------------------------------------------------------------------------

// ControlServer is the server API for the Control service.
type ControlServer interface {
	GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Refresh(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Filter(context.Context, *structpb.Struct) (*structpb.ListValue, error)
}

// RegisterControlServer attaches srv to a gRPC server.
func RegisterControlServer(s grpc.ServiceRegistrar, srv ControlServer) {
	s.RegisterService(&Control_ServiceDesc, srv)
}

func getStateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetStateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControlServer).GetState(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func refreshHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).Refresh(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RefreshMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControlServer).Refresh(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func filterHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).Filter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FilterMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControlServer).Filter(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Control_ServiceDesc is the grpc.ServiceDesc for the Control service.
var Control_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: getStateHandler},
		{MethodName: "Refresh", Handler: refreshHandler},
		{MethodName: "Filter", Handler: filterHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketviewer/control.proto",
}

// -----------------------------------------------------------------------------
// Client side
// -----------------------------------------------------------------------------

// ControlClient is the client API for the Control service.
type ControlClient interface {
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	Refresh(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Filter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type controlClient struct {
	cc grpc.ClientConnInterface
}

func NewControlClient(cc grpc.ClientConnInterface) ControlClient {
	return &controlClient{cc}
}

func (c *controlClient) GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetStateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) Refresh(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, RefreshMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) Filter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FilterMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

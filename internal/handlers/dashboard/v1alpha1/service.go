package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dexboard.dashboard.v1alpha1.DashboardService"

// Method names
const (
	MethodGetPage = "GetPage"
	MethodView    = "View"
	MethodPick    = "Pick"
	MethodReset   = "Reset"
	MethodClick   = "Click"
	MethodSearch  = "Search"
)

// DashboardServiceServer is the server API for the dashboard service.
// Requests and responses are protobuf Structs so the service needs no
// generated message types.
type DashboardServiceServer interface {
	GetPage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	View(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Pick(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Click(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Search(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv DashboardServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DashboardServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DashboardServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// DashboardServiceDesc describes the dashboard service for grpc.Server
var DashboardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodGetPage, DashboardServiceServer.GetPage),
		unaryMethod(MethodView, DashboardServiceServer.View),
		unaryMethod(MethodPick, DashboardServiceServer.Pick),
		unaryMethod(MethodReset, DashboardServiceServer.Reset),
		unaryMethod(MethodClick, DashboardServiceServer.Click),
		unaryMethod(MethodSearch, DashboardServiceServer.Search),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dexboard/dashboard/v1alpha1/dashboard.proto",
}

// RegisterDashboardServiceServer registers srv with s
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardServiceDesc, srv)
}

// DashboardServiceClient is the client API for the dashboard service
type DashboardServiceClient interface {
	GetPage(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	View(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Pick(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reset(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Click(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Search(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardServiceClient creates a client over cc
func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc: cc}
}

func (c *dashboardServiceClient) invoke(ctx context.Context, method string, req *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetPage(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetPage, req, opts)
}

func (c *dashboardServiceClient) View(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodView, req, opts)
}

func (c *dashboardServiceClient) Pick(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPick, req, opts)
}

func (c *dashboardServiceClient) Reset(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodReset, req, opts)
}

func (c *dashboardServiceClient) Click(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodClick, req, opts)
}

func (c *dashboardServiceClient) Search(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSearch, req, opts)
}

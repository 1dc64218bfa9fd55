// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: duel/v1/duel.proto

package duelv1

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
	DuelService_CreateGame_FullMethodName             = "/duel.v1.DuelService/CreateGame"
	DuelService_JoinGame_FullMethodName               = "/duel.v1.DuelService/JoinGame"
	DuelService_PlayCard_FullMethodName               = "/duel.v1.DuelService/PlayCard"
	DuelService_Attack_FullMethodName                 = "/duel.v1.DuelService/Attack"
	DuelService_EndTurn_FullMethodName                = "/duel.v1.DuelService/EndTurn"
	DuelService_Concede_FullMethodName                = "/duel.v1.DuelService/Concede"
	DuelService_GetGameState_FullMethodName           = "/duel.v1.DuelService/GetGameState"
	DuelService_SubscribeToGameUpdates_FullMethodName = "/duel.v1.DuelService/SubscribeToGameUpdates"
)

// DuelServiceClient is the client API for DuelService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DuelService runs live two-player card-battle matches.
type DuelServiceClient interface {
	// CreateGame builds a match for the player. Until real matchmaking exists a
	// placeholder opponent with the default deck fills the second seat.
	CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*CreateGameResponse, error)
	JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*JoinGameResponse, error)
	PlayCard(ctx context.Context, in *PlayCardRequest, opts ...grpc.CallOption) (*GameActionResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*GameActionResponse, error)
	EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*GameActionResponse, error)
	Concede(ctx context.Context, in *ConcedeRequest, opts ...grpc.CallOption) (*GameActionResponse, error)
	GetGameState(ctx context.Context, in *GetGameStateRequest, opts ...grpc.CallOption) (*GameStateResponse, error)
	// Server-streaming state push; terminates when the client cancels.
	SubscribeToGameUpdates(ctx context.Context, in *GameUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GameUpdateMessage], error)
}

type duelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDuelServiceClient(cc grpc.ClientConnInterface) DuelServiceClient {
	return &duelServiceClient{cc}
}

func (c *duelServiceClient) CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*CreateGameResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateGameResponse)
	err := c.cc.Invoke(ctx, DuelService_CreateGame_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*JoinGameResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JoinGameResponse)
	err := c.cc.Invoke(ctx, DuelService_JoinGame_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) PlayCard(ctx context.Context, in *PlayCardRequest, opts ...grpc.CallOption) (*GameActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GameActionResponse)
	err := c.cc.Invoke(ctx, DuelService_PlayCard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*GameActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GameActionResponse)
	err := c.cc.Invoke(ctx, DuelService_Attack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*GameActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GameActionResponse)
	err := c.cc.Invoke(ctx, DuelService_EndTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) Concede(ctx context.Context, in *ConcedeRequest, opts ...grpc.CallOption) (*GameActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GameActionResponse)
	err := c.cc.Invoke(ctx, DuelService_Concede_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) GetGameState(ctx context.Context, in *GetGameStateRequest, opts ...grpc.CallOption) (*GameStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GameStateResponse)
	err := c.cc.Invoke(ctx, DuelService_GetGameState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) SubscribeToGameUpdates(ctx context.Context, in *GameUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GameUpdateMessage], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DuelService_ServiceDesc.Streams[0], DuelService_SubscribeToGameUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GameUpdatesRequest, GameUpdateMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_SubscribeToGameUpdatesClient = grpc.ServerStreamingClient[GameUpdateMessage]

// DuelServiceServer is the server API for DuelService service.
// All implementations must embed UnimplementedDuelServiceServer
// for forward compatibility.
//
// DuelService runs live two-player card-battle matches.
type DuelServiceServer interface {
	// CreateGame builds a match for the player. Until real matchmaking exists a
	// placeholder opponent with the default deck fills the second seat.
	CreateGame(context.Context, *CreateGameRequest) (*CreateGameResponse, error)
	JoinGame(context.Context, *JoinGameRequest) (*JoinGameResponse, error)
	PlayCard(context.Context, *PlayCardRequest) (*GameActionResponse, error)
	Attack(context.Context, *AttackRequest) (*GameActionResponse, error)
	EndTurn(context.Context, *EndTurnRequest) (*GameActionResponse, error)
	Concede(context.Context, *ConcedeRequest) (*GameActionResponse, error)
	GetGameState(context.Context, *GetGameStateRequest) (*GameStateResponse, error)
	// Server-streaming state push; terminates when the client cancels.
	SubscribeToGameUpdates(*GameUpdatesRequest, grpc.ServerStreamingServer[GameUpdateMessage]) error
	mustEmbedUnimplementedDuelServiceServer()
}

// UnimplementedDuelServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDuelServiceServer struct{}

func (UnimplementedDuelServiceServer) CreateGame(context.Context, *CreateGameRequest) (*CreateGameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateGame not implemented")
}
func (UnimplementedDuelServiceServer) JoinGame(context.Context, *JoinGameRequest) (*JoinGameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method JoinGame not implemented")
}
func (UnimplementedDuelServiceServer) PlayCard(context.Context, *PlayCardRequest) (*GameActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlayCard not implemented")
}
func (UnimplementedDuelServiceServer) Attack(context.Context, *AttackRequest) (*GameActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Attack not implemented")
}
func (UnimplementedDuelServiceServer) EndTurn(context.Context, *EndTurnRequest) (*GameActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndTurn not implemented")
}
func (UnimplementedDuelServiceServer) Concede(context.Context, *ConcedeRequest) (*GameActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Concede not implemented")
}
func (UnimplementedDuelServiceServer) GetGameState(context.Context, *GetGameStateRequest) (*GameStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGameState not implemented")
}
func (UnimplementedDuelServiceServer) SubscribeToGameUpdates(*GameUpdatesRequest, grpc.ServerStreamingServer[GameUpdateMessage]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeToGameUpdates not implemented")
}
func (UnimplementedDuelServiceServer) mustEmbedUnimplementedDuelServiceServer() {}
func (UnimplementedDuelServiceServer) testEmbeddedByValue()                     {}

// UnsafeDuelServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DuelServiceServer will
// result in compilation errors.
type UnsafeDuelServiceServer interface {
	mustEmbedUnimplementedDuelServiceServer()
}

func RegisterDuelServiceServer(s grpc.ServiceRegistrar, srv DuelServiceServer) {
	// If the following call pancis, it indicates UnimplementedDuelServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DuelService_ServiceDesc, srv)
}

func _DuelService_CreateGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).CreateGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_CreateGame_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).CreateGame(ctx, req.(*CreateGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_JoinGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JoinGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).JoinGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_JoinGame_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).JoinGame(ctx, req.(*JoinGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_PlayCard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayCardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).PlayCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_PlayCard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).PlayCard(ctx, req.(*PlayCardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_Attack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).Attack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_Attack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).Attack(ctx, req.(*AttackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_EndTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).EndTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_EndTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).EndTurn(ctx, req.(*EndTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_Concede_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConcedeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).Concede(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_Concede_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).Concede(ctx, req.(*ConcedeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_GetGameState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGameStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).GetGameState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_GetGameState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).GetGameState(ctx, req.(*GetGameStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_SubscribeToGameUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GameUpdatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DuelServiceServer).SubscribeToGameUpdates(m, &grpc.GenericServerStream[GameUpdatesRequest, GameUpdateMessage]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_SubscribeToGameUpdatesServer = grpc.ServerStreamingServer[GameUpdateMessage]

// DuelService_ServiceDesc is the grpc.ServiceDesc for DuelService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DuelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "duel.v1.DuelService",
	HandlerType: (*DuelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateGame",
			Handler:    _DuelService_CreateGame_Handler,
		},
		{
			MethodName: "JoinGame",
			Handler:    _DuelService_JoinGame_Handler,
		},
		{
			MethodName: "PlayCard",
			Handler:    _DuelService_PlayCard_Handler,
		},
		{
			MethodName: "Attack",
			Handler:    _DuelService_Attack_Handler,
		},
		{
			MethodName: "EndTurn",
			Handler:    _DuelService_EndTurn_Handler,
		},
		{
			MethodName: "Concede",
			Handler:    _DuelService_Concede_Handler,
		},
		{
			MethodName: "GetGameState",
			Handler:    _DuelService_GetGameState_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeToGameUpdates",
			Handler:       _DuelService_SubscribeToGameUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "duel/v1/duel.proto",
}

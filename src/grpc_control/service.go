package grpc_control

//go:generate mockgen -package=grpc_control -destination=mock_state_provider_test.go -source=../interfaces/state_provider.go IStateProvider

import (
	"context"
	"encoding/json"
	"fmt"

	"market-viewer/src/filter"
	"market-viewer/src/format"
	"market-viewer/src/interfaces"
	"market-viewer/src/logger"
	"market-viewer/src/models"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ControlService implements ControlServer on top of the polling controller.
type ControlService struct {
	Provider  interfaces.IStateProvider
	Formatter *format.Formatter
	Logger    *logger.Logger
}

var _ ControlServer = (*ControlService)(nil)

// NewControlService creates a new instance of ControlService
func NewControlService(provider interfaces.IStateProvider, formatter *format.Formatter, log *logger.Logger) *ControlService {
	return &ControlService{
		Provider:  provider,
		Formatter: formatter,
		Logger:    log,
	}
}

// -----------------------------------------------------------------------------

func (s *ControlService) GetState(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := toProto(models.Summarize(s.Provider.State()), out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode state: %v", err)
	}
	return out, nil
}

// -----------------------------------------------------------------------------

func (s *ControlService) Refresh(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.Provider.RefreshNow(); err != nil {
		s.Logger.Warning("gRPC: refresh rejected: %v", err)
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	s.Logger.Info("gRPC: refresh requested")
	return &emptypb.Empty{}, nil
}

// -----------------------------------------------------------------------------

// Filter expects {"category": string, "q": string}. An unknown category
// returns an empty list.
func (s *ControlService) Filter(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	fields := req.GetFields()
	category := fields["category"].GetStringValue()
	if category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	query := fields["q"].GetStringValue()

	c, ok := models.ParseCategory(category)
	if !ok {
		return &structpb.ListValue{}, nil
	}

	items := s.Formatter.PresentAll(filter.Filter(s.Provider.State().Snapshot, c, query))
	out := new(structpb.ListValue)
	if err := toProto(items, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode instruments: %v", err)
	}
	return out, nil
}

// -----------------------------------------------------------------------------

// toProto converts a JSON-tagged value to a Struct or ListValue, keeping the
// same field names REST clients see.
func toProto(v any, out proto.Message) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return protojson.Unmarshal(data, out)
}
